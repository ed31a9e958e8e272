package universe

const (
	LabelStart  = "Start"
	LabelStop   = "Stop"
	LabelClear  = "Clear"
	LabelRandom = "Random"
)

//ButtonState describes one control: its caption and whether it can be pressed
type ButtonState struct {
	Label   string
	Enabled bool
}

//ButtonStates holds the state of all three controls
type ButtonStates struct {
	Start  ButtonState
	Clear  ButtonState
	Random ButtonState
}

//Controls derives the control states from the universe status
//with no live cells Start and Clear are disabled,
//while running Start turns into Stop and Clear with Random are disabled
func Controls(st Status) ButtonStates {
	anyAlive := st.LiveCells > 0
	if st.RunningMode == RunningStateRunning {
		return ButtonStates{
			Start:  ButtonState{LabelStop, true},
			Clear:  ButtonState{LabelClear, false},
			Random: ButtonState{LabelRandom, false},
		}
	}
	return ButtonStates{
		Start:  ButtonState{LabelStart, anyAlive},
		Clear:  ButtonState{LabelClear, anyAlive},
		Random: ButtonState{LabelRandom, true},
	}
}
