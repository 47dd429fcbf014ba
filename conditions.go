package main

import (
	"encoding/json"
	"fmt"
)

// Condition is the closed set of weather kinds the app knows how to render.
type Condition int

const (
	ConditionSunny Condition = iota
	ConditionPartlyCloudy
	ConditionCloudy
	ConditionRainy
	ConditionStormy
	ConditionSnowy
	ConditionFoggy
	ConditionWindy
)

var conditionNames = [...]string{
	ConditionSunny:        "sunny",
	ConditionPartlyCloudy: "partly_cloudy",
	ConditionCloudy:       "cloudy",
	ConditionRainy:        "rainy",
	ConditionStormy:       "stormy",
	ConditionSnowy:        "snowy",
	ConditionFoggy:        "foggy",
	ConditionWindy:        "windy",
}

var conditionIcons = [...]string{
	ConditionSunny:        "sun.max.fill",
	ConditionPartlyCloudy: "cloud.sun.fill",
	ConditionCloudy:       "cloud.fill",
	ConditionRainy:        "cloud.rain.fill",
	ConditionStormy:       "cloud.bolt.rain.fill",
	ConditionSnowy:        "cloud.snow.fill",
	ConditionFoggy:        "cloud.fog.fill",
	ConditionWindy:        "wind",
}

// conditionGradients maps each condition to its background gradient,
// ordered start color then end color.
var conditionGradients = [...][2]string{
	ConditionSunny:        {"#4A90D9", "#87CEEB"},
	ConditionPartlyCloudy: {"#5B7C99", "#8FB8DE"},
	ConditionCloudy:       {"#6B7B8C", "#9AA8B5"},
	ConditionRainy:        {"#3E5166", "#5D7290"},
	ConditionStormy:       {"#2C3A4A", "#4A5A6E"},
	ConditionSnowy:        {"#8CA6BE", "#C4D4E0"},
	ConditionFoggy:        {"#7D8A94", "#AAB5BD"},
	ConditionWindy:        {"#5E8CA7", "#8CB8CE"},
}

func (c Condition) valid() bool {
	return c >= ConditionSunny && c <= ConditionWindy
}

func (c Condition) String() string {
	if !c.valid() {
		return fmt.Sprintf("Condition(%d)", int(c))
	}
	return conditionNames[c]
}

// Icon returns the display icon identifier for the condition.
func (c Condition) Icon() string {
	if !c.valid() {
		return conditionIcons[ConditionCloudy]
	}
	return conditionIcons[c]
}

// Gradient returns the start and end colors of the condition's background.
func (c Condition) Gradient() [2]string {
	if !c.valid() {
		return conditionGradients[ConditionCloudy]
	}
	return conditionGradients[c]
}

// ParseCondition maps a wire name back to its Condition.
func ParseCondition(s string) (Condition, error) {
	for c, name := range conditionNames {
		if name == s {
			return Condition(c), nil
		}
	}
	return 0, fmt.Errorf("unknown condition %q", s)
}

func (c Condition) MarshalJSON() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("cannot marshal invalid condition %d", int(c))
	}
	return json.Marshal(c.String())
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCondition(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
