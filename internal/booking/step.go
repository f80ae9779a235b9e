package booking

// Step is one of the three wizard stages.
type Step int

const (
	StepService  Step = 1
	StepSchedule Step = 2
	StepDetails  Step = 3
)

// FirstStep and LastStep bound the wizard.
const (
	FirstStep = StepService
	LastStep  = StepDetails
)

// Steps returns the stages in order.
func Steps() []Step { return []Step{StepService, StepSchedule, StepDetails} }

// Title is the progress-bar label of the step.
func (s Step) Title() string {
	switch s {
	case StepService:
		return "Service"
	case StepSchedule:
		return "Schedule"
	case StepDetails:
		return "Details"
	default:
		return ""
	}
}

// Valid reports whether s is within the wizard.
func (s Step) Valid() bool { return s >= FirstStep && s <= LastStep }
