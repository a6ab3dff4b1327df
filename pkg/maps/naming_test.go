package maps

import "testing"

func TestDeriveIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		want Identifiers
	}{
		{
			name: "Desert Storm",
			want: Identifiers{
				MapID:               "desert-storm",
				ScenarioID:          "desert-storm-multiplayer",
				MapDescription:      "Desert Storm",
				ScenarioDescription: "Desert Storm Multiplayer",
			},
		},
		{
			name: "Sergeant's Run",
			want: Identifiers{
				MapID:               "sergeants-run",
				ScenarioID:          "sergeants-run-multiplayer",
				MapDescription:      "Sergeant's Run",
				ScenarioDescription: "Sergeant's Run Multiplayer",
			},
		},
		{
			name: "Fire + Ice",
			want: Identifiers{
				MapID:               "fire-ice",
				ScenarioID:          "fire-ice-multiplayer",
				MapDescription:      "Fire  Ice",
				ScenarioDescription: "Fire  Ice Multiplayer",
			},
		},
		{
			name: "  Twin  Peaks ",
			want: Identifiers{
				MapID:               "twin-peaks",
				ScenarioID:          "twin-peaks-multiplayer",
				MapDescription:      "  Twin  Peaks ",
				ScenarioDescription: "  Twin  Peaks  Multiplayer",
			},
		},
		{
			name: "King’s Gambit+",
			want: Identifiers{
				MapID:               "kings-gambit",
				ScenarioID:          "kings-gambit-multiplayer",
				MapDescription:      "King’s Gambit",
				ScenarioDescription: "King’s Gambit Multiplayer",
			},
		},
		{
			name: "",
			want: Identifiers{
				ScenarioID:          "-multiplayer",
				ScenarioDescription: " Multiplayer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveIdentifiers(tt.name)
			if got != tt.want {
				t.Errorf("DeriveIdentifiers(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}
