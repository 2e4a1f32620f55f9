package life

import (
	"strconv"

	"chunklife/internal/core"
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	st := s.engine.Stats()
	rule := s.engine.Rule()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.World.Width),
				intParam("h", "Height", s.cfg.World.Height),
				intParam("chunk", "Chunk size", s.engine.ChunkSize()),
				int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Value: rule.String()},
				boolParam("wrap_x", "Wrap X", rule.WrapX),
				boolParam("wrap_y", "Wrap Y", rule.WrapY),
				boolParam("sleep", "Sleep", s.cfg.Engine.Sleep),
			},
		},
		{
			Name: "Controls",
			Params: []core.Parameter{
				intParam("steps_per_tick", "Steps per tick", s.cfg.View.StepsPerTick),
				floatParam("density", "Soup density", s.cfg.Seed.Density),
				intParam("region", "Soup size", s.cfg.Seed.Region),
			},
		},
		{
			Name:    "Stats",
			Summary: "Engine counters after the latest step",
			Params: []core.Parameter{
				intParam("generation", "Generation", st.Generation),
				intParam("population", "Population", st.Population),
				intParam("chunks", "Chunks", st.Chunks),
				intParam("sleeping", "Sleeping", st.Sleeping),
				intParam("origin_x", "View X", s.ox),
				intParam("origin_y", "View Y", s.oy),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Sim) ParameterControls() []core.ParameterControl {
	limit := s.engine.LimitBound()
	side := limit.MaxX + 1
	if limit.MaxY+1 < side {
		side = limit.MaxY + 1
	}
	return []core.ParameterControl{
		{Key: "steps_per_tick", Label: "Steps/tick", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "region", Label: "Soup size", Type: core.ParamTypeInt, Step: 16, Min: 16, Max: float64(side), HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer control. Soup changes apply on the
// next Reset.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "steps_per_tick":
		if value < 1 {
			return false
		}
		s.cfg.View.StepsPerTick = value
	case "region":
		if value < 0 {
			return false
		}
		s.cfg.Seed.Region = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point control.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if key != "density" || value < 0 || value > 1 {
		return false
	}
	s.cfg.Seed.Density = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
