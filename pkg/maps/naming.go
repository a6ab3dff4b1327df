package maps

import "strings"

const scenarioSuffix = "multiplayer"

// idStripper removes characters that never appear in ids.
var idStripper = strings.NewReplacer("+", "", "'", "", "’", "")

// DeriveIdentifiers turns a free-text map name into ids and descriptions.
// Every name is accepted; an empty name yields empty ids.
func DeriveIdentifiers(name string) Identifiers {
	mapID := strings.Join(strings.Fields(strings.ToLower(idStripper.Replace(name))), "-")

	// Descriptions keep the name's spacing; only "+" is removed
	mapDesc := strings.ReplaceAll(name, "+", "")

	return Identifiers{
		MapID:               mapID,
		ScenarioID:          mapID + "-" + scenarioSuffix,
		MapDescription:      mapDesc,
		ScenarioDescription: mapDesc + " Multiplayer",
	}
}
