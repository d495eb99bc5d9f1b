package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/wendler"
)

var (
	green     = color.New(color.FgGreen).SprintFunc()
	cyan      = color.New(color.FgCyan).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
	faint     = color.New(color.Faint).SprintFunc()
	magentaB  = color.New(color.FgMagenta, color.Bold).SprintFunc()
	greenBold = color.New(color.FgGreen, color.Bold).SprintFunc()
)

func printSetupHint() {
	fmt.Println(yellow("No training profile yet."))
	fmt.Println("Finish setup first: wendler setup --start 2024-01-01 --unit imperial --schedule mon:squat,wed:bench,fri:deadlift,sat:ohp --squat 300 ...")
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// centerText centers s in a field of the given width.
func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// printDay renders one workout with its sets.
func printDay(day models.DailyWorkout, profile *models.UserProfile) {
	status := ""
	if day.IsCompleted {
		status = " " + green("✓ done")
	}
	fmt.Printf("%s %s  %s%s\n", cyan(day.DayOfWeek.String()[:3]), day.Date, magentaB(day.MainLift.Name()), status)
	fmt.Printf("    %s %s\n", faint("TM"), wendler.FormatWeight(profile.TrainingMaxes[day.MainLift], &models.UserProfile{
		UnitSystem: profile.UnitSystem, WeightDisplay: models.DisplayTotal,
	}))

	for i, set := range day.Sets {
		reps := set.TargetReps
		if set.IsAmrap {
			reps = yellow(reps)
		}
		line := fmt.Sprintf("    %d. %-5s x %-4s %s", i+1, wendler.FormatPercentage(set.Percentage), reps,
			wendler.FormatWeight(set.TargetWeight, profile))
		if set.CompletedReps != nil {
			done := fmt.Sprintf("→ %d reps", *set.CompletedReps)
			if *set.CompletedReps < wendler.BaseReps(set.TargetReps) {
				done = red(done)
			} else {
				done = green(done)
			}
			line += "  " + done
		}
		fmt.Println(line)
	}
}

func printWeek(week models.WeeklyWorkout, profile *models.UserProfile) {
	fmt.Printf("\n%s\n", greenBold(week.WeekName))
	fmt.Println(strings.Repeat("-", 60))
	if len(week.Days) == 0 {
		fmt.Println(faint("  No training days scheduled."))
		return
	}
	for _, day := range week.Days {
		printDay(day, profile)
	}
}
