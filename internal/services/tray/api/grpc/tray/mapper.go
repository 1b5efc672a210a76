package tray

import (
	dicetrayv1 "github.com/louisbranch/dicetray/api/gen/go/dicetray/v1"
	"github.com/louisbranch/dicetray/internal/services/tray/domain"
)

func patchFromProto(in *dicetrayv1.ConfigureRequest) domain.SettingsPatch {
	return domain.SettingsPatch{
		UnitCount:    optionalInt(in.UnitCount),
		DefaultValue: optionalInt(in.DefaultValue),
		Sides:        optionalInt(in.Sides),
	}
}

func optionalInt(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// forcedFromProto keeps list positions; unset entries leave that die random.
func forcedFromProto(values []*dicetrayv1.ForcedValue) []*int {
	if len(values) == 0 {
		return nil
	}
	forced := make([]*int, len(values))
	for i, v := range values {
		if v != nil {
			forced[i] = optionalInt(v.Value)
		}
	}
	return forced
}

func settingsToProto(settings domain.Settings) *dicetrayv1.TraySettings {
	return &dicetrayv1.TraySettings{
		UnitCount:    int32(settings.UnitCount),
		DefaultValue: int32(settings.DefaultValue),
		Sides:        int32(settings.Sides),
	}
}

func resultToProto(result domain.Result) *dicetrayv1.RollResult {
	values := make([]int32, len(result.Values))
	for i, v := range result.Values {
		values[i] = int32(v)
	}
	return &dicetrayv1.RollResult{Total: int32(result.Total), Values: values}
}

func stateToProto(state domain.State) *dicetrayv1.TrayState {
	return &dicetrayv1.TrayState{
		Settings:    settingsToProto(state.Settings),
		Result:      resultToProto(state.Result),
		Outstanding: int32(state.Outstanding),
		Live:        int32(state.Live),
		Rolling:     state.Rolling(),
	}
}
