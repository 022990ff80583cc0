package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolbeans/eones/pkg/date"
	"github.com/coolbeans/eones/pkg/delta"
	"github.com/coolbeans/eones/pkg/holiday"
	"github.com/coolbeans/eones/pkg/humanize"
	"github.com/coolbeans/eones/pkg/locales"
	"github.com/coolbeans/eones/pkg/parser"
	"github.com/coolbeans/eones/pkg/period"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "eones",
		Short: "Timezone-aware date toolbox",
		Long: `Eones parses, shifts, compares and formats timezone-aware dates.

It accepts loose input formats (ISO-8601, day-first, compact digits),
applies calendar-correct arithmetic with month clamping, and renders
periods and human-readable differences.`,
		Version: version,
	}

	rootCmd.PersistentFlags().String("tz", "UTC", "IANA timezone for parsing and output")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(formatCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(rangeCmd())
	rootCmd.AddCommand(humanizeCmd())
	rootCmd.AddCommand(workdaysCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseWithFlags(cmd *cobra.Command, value string) (date.Date, error) {
	tz, _ := cmd.Flags().GetString("tz")
	dayFirst, _ := cmd.Flags().GetBool("day-first")
	extra, _ := cmd.Flags().GetStringSlice("layout")

	opts := parser.DefaultOptions()
	opts.Zone = tz
	opts.DayFirst = dayFirst
	// an unset --layout is an empty non-nil slice, which must not wipe
	// the defaults; given layouts are tried before them
	if len(extra) > 0 {
		opts.Formats = append(extra, parser.DefaultFormats...)
	}

	p, err := parser.New(opts)
	if err != nil {
		return date.Date{}, err
	}
	if value == "" || value == "now" {
		return p.Parse(nil)
	}
	return p.ParseString(value)
}

func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("day-first", true, "Prefer day-first for ambiguous numeric dates")
	cmd.Flags().StringSlice("layout", nil, "Extra Go time layouts to try first")
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [value]",
		Short: "Parse a date string and print it",
		Long: `Parse a date string with the built-in layouts and print the result.

Example:
  eones parse "15/06/2025 14:30" --tz Europe/Madrid
  eones parse "2025-06-15T14:30:00Z" --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) > 0 {
				value = args[0]
			}
			asJSON, _ := cmd.Flags().GetBool("json")

			d, err := parseWithFlags(cmd, value)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(d.ToMap(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Println(d.ISO())
			return nil
		},
	}
	addParseFlags(cmd)
	cmd.Flags().Bool("json", false, "Print the date as a JSON field map")
	return cmd
}

func formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [value]",
		Short: "Render a date with a Go layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) > 0 {
				value = args[0]
			}
			layout, _ := cmd.Flags().GetString("layout-out")

			d, err := parseWithFlags(cmd, value)
			if err != nil {
				return err
			}
			fmt.Println(d.Format(layout))
			return nil
		},
	}
	addParseFlags(cmd)
	cmd.Flags().String("layout-out", "2006-01-02 15:04:05", "Go layout for output")
	return cmd
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [value]",
		Short: "Shift a date by calendar and clock amounts",
		Long: `Shift a date. Years and months apply first with end-of-month clamping,
then weeks, days and clock units as exact elapsed time.

Example:
  eones add 2025-01-31 --months 1
  eones add "2025-06-15 10:00" --days -3 --hours 6`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) > 0 {
				value = args[0]
			}
			iso, _ := cmd.Flags().GetString("iso")

			d, err := parseWithFlags(cmd, value)
			if err != nil {
				return err
			}

			var dl delta.Delta
			if iso != "" {
				dl, err = delta.FromISO(iso)
				if err != nil {
					return err
				}
			} else {
				var c delta.Components
				c.Years, _ = cmd.Flags().GetInt("years")
				c.Months, _ = cmd.Flags().GetInt("months")
				c.Weeks, _ = cmd.Flags().GetInt("weeks")
				c.Days, _ = cmd.Flags().GetInt("days")
				c.Hours, _ = cmd.Flags().GetInt("hours")
				c.Minutes, _ = cmd.Flags().GetInt("minutes")
				c.Seconds, _ = cmd.Flags().GetInt("seconds")
				dl = delta.New(c)
			}

			fmt.Println(dl.Apply(d).ISO())
			return nil
		},
	}
	addParseFlags(cmd)
	cmd.Flags().Int("years", 0, "Calendar years to add")
	cmd.Flags().Int("months", 0, "Calendar months to add")
	cmd.Flags().Int("weeks", 0, "Weeks to add")
	cmd.Flags().Int("days", 0, "Days to add")
	cmd.Flags().Int("hours", 0, "Hours to add")
	cmd.Flags().Int("minutes", 0, "Minutes to add")
	cmd.Flags().Int("seconds", 0, "Seconds to add")
	cmd.Flags().String("iso", "", "ISO-8601 duration to add, e.g. P1Y2M3DT4H")
	return cmd
}

func diffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Whole-unit distance between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, _ := cmd.Flags().GetString("unit")

			from, err := parseWithFlags(cmd, args[0])
			if err != nil {
				return err
			}
			to, err := parseWithFlags(cmd, args[1])
			if err != nil {
				return err
			}

			n, err := to.Diff(from, unit)
			if err != nil {
				return err
			}
			fmt.Printf("%d %s\n", n, unit)
			return nil
		},
	}
	addParseFlags(cmd)
	cmd.Flags().String("unit", "days", "Unit: days, weeks, months or years")
	return cmd
}

func rangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range [value]",
		Short: "Print the period containing a date",
		Long: `Print the start and end of the day, week, month, quarter or year
containing a date. Ends are inclusive, at the last microsecond.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) > 0 {
				value = args[0]
			}
			mode, _ := cmd.Flags().GetString("mode")
			firstDay, _ := cmd.Flags().GetInt("first-day")

			d, err := parseWithFlags(cmd, value)
			if err != nil {
				return err
			}

			var span period.Span
			switch mode {
			case "day":
				span = period.Day(d)
			case "week":
				span = period.Week(d, firstDay)
			case "month":
				span = period.Month(d)
			case "quarter":
				span = period.Quarter(d)
			case "year":
				span = period.Year(d)
			default:
				return fmt.Errorf("unknown range mode %q", mode)
			}

			fmt.Printf("start: %s\n", span.Start.ISO())
			fmt.Printf("end:   %s\n", span.End.ISO())
			return nil
		},
	}
	addParseFlags(cmd)
	cmd.Flags().String("mode", "month", "Period: day, week, month, quarter or year")
	cmd.Flags().Int("first-day", 0, "First day of the week (0 = Monday)")
	return cmd
}

func humanizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "humanize <value> [reference]",
		Short: "Describe a date relative to another",
		Long: `Describe the distance to a date as a phrase like "3 days ago" or
"in 2 weeks". Without a reference the current time is used.

Example:
  eones humanize 2025-06-01 --locale es`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, _ := cmd.Flags().GetString("locale")

			d, err := parseWithFlags(cmd, args[0])
			if err != nil {
				return err
			}

			var ref *date.Date
			if len(args) > 1 {
				r, err := parseWithFlags(cmd, args[1])
				if err != nil {
					return err
				}
				ref = &r
			}

			phrase, err := humanize.DiffForHumans(d, ref, locale)
			if err != nil {
				return err
			}
			fmt.Println(phrase)
			return nil
		},
	}
	addParseFlags(cmd)
	cmd.Flags().String("locale", locales.DefaultLocale, "Locale for the phrase (en, es)")
	return cmd
}

func workdaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workdays [value]",
		Short: "Business-day queries against a holiday calendar",
		Long: `Check whether a date is a business day, or list the next N business
days, skipping weekends and the holidays in a YAML calendar file.

Example:
  eones workdays 2025-12-24 --calendar holidays.yaml --next 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calendarPath, _ := cmd.Flags().GetString("calendar")
			next, _ := cmd.Flags().GetInt("next")
			easterYear, _ := cmd.Flags().GetInt("easter")

			if easterYear > 0 {
				fmt.Println(holiday.Easter(easterYear).Format("2006-01-02"))
				return nil
			}

			value := ""
			if len(args) > 0 {
				value = args[0]
			}
			d, err := parseWithFlags(cmd, value)
			if err != nil {
				return err
			}

			cal := holiday.NewCalendar(d.ZoneName())
			if calendarPath != "" {
				if err := cal.LoadFile(calendarPath); err != nil {
					return err
				}
			}

			if next > 0 {
				days := cal.NextBusinessDays(d, next)
				lines := make([]string, len(days))
				for i, day := range days {
					lines[i] = day.Format("2006-01-02")
				}
				fmt.Println(strings.Join(lines, "\n"))
				return nil
			}

			if name, ok := cal.Name(d); ok {
				fmt.Printf("%s: holiday (%s)\n", d.Format("2006-01-02"), name)
				return nil
			}
			fmt.Printf("%s: business day = %s\n", d.Format("2006-01-02"),
				strconv.FormatBool(cal.IsBusinessDay(d)))
			return nil
		},
	}
	addParseFlags(cmd)
	cmd.Flags().String("calendar", "", "YAML holiday calendar file")
	cmd.Flags().Int("next", 0, "List the next N business days")
	cmd.Flags().Int("easter", 0, "Print Easter Sunday for a year and exit")
	return cmd
}
