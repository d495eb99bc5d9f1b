package wendler

// SetScheme is one prescribed set of a week template.
type SetScheme struct {
	Percentage float64
	Reps       string
	Amrap      bool
}

// WeekTemplate is the set scheme used by every lift in one week of a cycle.
type WeekTemplate struct {
	Name string
	Sets []SetScheme
}

// CycleWeeks is the length of a cycle in weeks.
const CycleWeeks = 4

// Templates holds the four weeks of a cycle in progression order:
// 3x5, 3x3, 5/3/1 and the deload. Never reorder.
var Templates = [CycleWeeks]WeekTemplate{
	{
		Name: "Week 1 (3x5)",
		Sets: []SetScheme{
			{Percentage: 0.65, Reps: "5"},
			{Percentage: 0.75, Reps: "5"},
			{Percentage: 0.85, Reps: "5+", Amrap: true},
		},
	},
	{
		Name: "Week 2 (3x3)",
		Sets: []SetScheme{
			{Percentage: 0.70, Reps: "3"},
			{Percentage: 0.80, Reps: "3"},
			{Percentage: 0.90, Reps: "3+", Amrap: true},
		},
	},
	{
		Name: "Week 3 (5/3/1)",
		Sets: []SetScheme{
			{Percentage: 0.75, Reps: "5"},
			{Percentage: 0.85, Reps: "3"},
			{Percentage: 0.95, Reps: "1+", Amrap: true},
		},
	},
	{
		Name: "Week 4 (Deload)",
		Sets: []SetScheme{
			{Percentage: 0.40, Reps: "5"},
			{Percentage: 0.50, Reps: "5"},
			{Percentage: 0.60, Reps: "5"},
		},
	},
}
