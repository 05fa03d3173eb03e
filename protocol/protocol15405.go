// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

// Package protocol carries the compile-time type catalogue for one
// StarCraft II protocol build (15405), generated from Blizzard's
// s2protocol definitions as static data rather than a schema loaded at
// runtime.
package protocol

import "github.com/blizzreplay/s2replay/versioned"

// Root typeids for the entry points versioned.Decode is called against.
const (
	ReplayHeaderTypeId  versioned.TypeId = 13
	GameEventIdTypeId   versioned.TypeId = 0
	GameDetailsTypeId   versioned.TypeId = 32
	MessageEventIdTypeId versioned.TypeId = 1
)

// EventType names the protocol struct a tracker/game/message event id
// decodes against.
type EventType struct {
	Type versioned.TypeId
	Name string
}

// GameEventTypes maps a game-event wire id (the tag read from the
// bit-packed game-event-loop header, outside this package's scope) to
// the typeid and fully-qualified event name used to decode its body.
var GameEventTypes = map[uint32]EventType{
	5:  {62, "NNet.Game.SUserFinishedLoadingSyncEvent"},
	7:  {56, "NNet.Game.SBankFileEvent"},
	8:  {58, "NNet.Game.SBankSectionEvent"},
	9:  {59, "NNet.Game.SBankKeyEvent"},
	10: {60, "NNet.Game.SBankValueEvent"},
	11: {61, "NNet.Game.SUserOptionsEvent"},
	22: {63, "NNet.Game.SSaveGameEvent"},
	23: {62, "NNet.Game.SSaveGameDoneEvent"},
	25: {62, "NNet.Game.SPlayerLeaveEvent"},
	26: {67, "NNet.Game.SGameCheatEvent"},
	27: {70, "NNet.Game.SCmdEvent"},
	28: {76, "NNet.Game.SSelectionDeltaEvent"},
	29: {78, "NNet.Game.SControlGroupUpdateEvent"},
	30: {80, "NNet.Game.SSelectionSyncCheckEvent"},
	31: {82, "NNet.Game.SResourceTradeEvent"},
	32: {83, "NNet.Game.STriggerChatMessageEvent"},
	33: {85, "NNet.Game.SAICommunicateEvent"},
	34: {86, "NNet.Game.SSetAbsoluteGameSpeedEvent"},
	35: {87, "NNet.Game.SAddAbsoluteGameSpeedEvent"},
	37: {88, "NNet.Game.SBroadcastCheatEvent"},
	38: {89, "NNet.Game.SAllianceEvent"},
	39: {90, "NNet.Game.SUnitClickEvent"},
	40: {91, "NNet.Game.SUnitHighlightEvent"},
	41: {92, "NNet.Game.STriggerReplySelectedEvent"},
	44: {62, "NNet.Game.STriggerSkippedEvent"},
	45: {98, "NNet.Game.STriggerSoundLengthQueryEvent"},
	46: {101, "NNet.Game.STriggerSoundOffsetEvent"},
	47: {102, "NNet.Game.STriggerTransmissionOffsetEvent"},
	48: {102, "NNet.Game.STriggerTransmissionCompleteEvent"},
	49: {105, "NNet.Game.SCameraUpdateEvent"},
	50: {62, "NNet.Game.STriggerAbortMissionEvent"},
	51: {93, "NNet.Game.STriggerPurchaseMadeEvent"},
	52: {62, "NNet.Game.STriggerPurchaseExitEvent"},
	53: {94, "NNet.Game.STriggerPlanetMissionLaunchedEvent"},
	54: {62, "NNet.Game.STriggerPlanetPanelCanceledEvent"},
	55: {97, "NNet.Game.STriggerDialogControlEvent"},
	56: {100, "NNet.Game.STriggerSoundLengthSyncEvent"},
	57: {107, "NNet.Game.STriggerConversationSkippedEvent"},
	58: {108, "NNet.Game.STriggerMouseClickedEvent"},
	63: {62, "NNet.Game.STriggerPlanetPanelReplayEvent"},
	64: {109, "NNet.Game.STriggerSoundtrackDoneEvent"},
	65: {110, "NNet.Game.STriggerPlanetMissionSelectedEvent"},
	66: {111, "NNet.Game.STriggerKeyPressedEvent"},
	67: {122, "NNet.Game.STriggerMovieFunctionEvent"},
	68: {62, "NNet.Game.STriggerPlanetPanelBirthCompleteEvent"},
	69: {62, "NNet.Game.STriggerPlanetPanelDeathCompleteEvent"},
	70: {112, "NNet.Game.SResourceRequestEvent"},
	71: {113, "NNet.Game.SResourceRequestFulfillEvent"},
	72: {114, "NNet.Game.SResourceRequestCancelEvent"},
	73: {62, "NNet.Game.STriggerResearchPanelExitEvent"},
	74: {62, "NNet.Game.STriggerResearchPanelPurchaseEvent"},
	75: {115, "NNet.Game.STriggerResearchPanelSelectionChangedEvent"},
	76: {116, "NNet.Game.SLagMessageEvent"},
	77: {62, "NNet.Game.STriggerMercenaryPanelExitEvent"},
	78: {62, "NNet.Game.STriggerMercenaryPanelPurchaseEvent"},
	79: {117, "NNet.Game.STriggerMercenaryPanelSelectionChangedEvent"},
	80: {62, "NNet.Game.STriggerVictoryPanelExitEvent"},
	81: {62, "NNet.Game.STriggerBattleReportPanelExitEvent"},
	82: {118, "NNet.Game.STriggerBattleReportPanelPlayMissionEvent"},
	83: {119, "NNet.Game.STriggerBattleReportPanelPlaySceneEvent"},
	84: {119, "NNet.Game.STriggerBattleReportPanelSelectionChangedEvent"},
	85: {94, "NNet.Game.STriggerVictoryPanelPlayMissionAgainEvent"},
	86: {62, "NNet.Game.STriggerMovieStartedEvent"},
	87: {62, "NNet.Game.STriggerMovieFinishedEvent"},
	88: {120, "NNet.Game.SDecrementGameTimeRemainingEvent"},
	89: {121, "NNet.Game.STriggerPortraitLoadedEvent"},
	90: {123, "NNet.Game.STriggerCustomDialogDismissedEvent"},
	91: {124, "NNet.Game.STriggerGameMenuItemSelectedEvent"},
	92: {125, "NNet.Game.STriggerCameraMoveEvent"},
	93: {93, "NNet.Game.STriggerPurchasePanelSelectedPurchaseItemChangedEvent"},
	94: {126, "NNet.Game.STriggerPurchasePanelSelectedPurchaseCategoryChangedEvent"},
	95: {127, "NNet.Game.STriggerButtonPressedEvent"},
	96: {62, "NNet.Game.STriggerGameCreditsFinishedEvent"},
}

// MessageEventTypes maps a message-event wire id to its typeid/name.
var MessageEventTypes = map[uint32]EventType{
	0: {128, "NNet.Game.SChatMessage"},
	1: {129, "NNet.Game.SPingMessage"},
	2: {130, "NNet.Game.SLoadingProgressMessage"},
	3: {62, "NNet.Game.SServerPingMessage"},
}

// TypeInfos is the full build-15405 type catalogue, indexed by
// versioned.TypeId. Entries are laid out in declaration order to match
// the generated source this was ported from, not any semantic grouping.
var TypeInfos = []versioned.TypeInfo{
	// 0
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 7}},
	// 1
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 4}},
	// 2
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 6}},
	// 3
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 14}},
	// 4
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 22}},
	// 5
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 32}},
	// 6
	{Kind: versioned.KindChoice, Bounds: versioned.IntBounds{Min: 0, BitLen: 2}, Choices: map[uint32]versioned.ChoiceOption{
		0: {Name: "m_uint6", Type: 2},
		1: {Name: "m_uint14", Type: 3},
		2: {Name: "m_uint22", Type: 4},
		3: {Name: "m_uint32", Type: 5},
	}},
	// 7
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 5}},
	// 8
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_playerId", Type: 7, Tag: -1},
	}}},
	// 9
	{Kind: versioned.KindBlob, Bounds: versioned.IntBounds{Min: 0, BitLen: 8}},
	// 10
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 8}},
	// 11
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_flags", Type: 10, Tag: 0},
		{Name: "m_major", Type: 10, Tag: 1},
		{Name: "m_minor", Type: 10, Tag: 2},
		{Name: "m_revision", Type: 10, Tag: 3},
		{Name: "m_build", Type: 5, Tag: 4},
		{Name: "m_baseBuild", Type: 5, Tag: 5},
	}}},
	// 12
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 3}},
	// 13
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_signature", Type: 9, Tag: 0},
		{Name: "m_version", Type: 11, Tag: 1},
		{Name: "m_type", Type: 12, Tag: 2},
		{Name: "m_elapsedGameLoops", Type: 5, Tag: 3},
	}}},
	// 14
	{Kind: versioned.KindFourCC},
	// 15
	{Kind: versioned.KindBlob, Bounds: versioned.IntBounds{Min: 0, BitLen: 7}},
	// 16
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 64}},
	// 17
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_region", Type: 10, Tag: 0},
		{Name: "m_programId", Type: 14, Tag: 1},
		{Name: "m_realm", Type: 5, Tag: 2},
		{Name: "m_name", Type: 15, Tag: 3},
		{Name: "m_id", Type: 16, Tag: 4},
	}}},
	// 18
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_a", Type: 10, Tag: 0},
		{Name: "m_r", Type: 10, Tag: 1},
		{Name: "m_g", Type: 10, Tag: 2},
		{Name: "m_b", Type: 10, Tag: 3},
	}}},
	// 19
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 2}},
	// 20
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_name", Type: 9, Tag: 0},
		{Name: "m_toon", Type: 17, Tag: 1},
		{Name: "m_race", Type: 9, Tag: 2},
		{Name: "m_color", Type: 18, Tag: 3},
		{Name: "m_control", Type: 10, Tag: 4},
		{Name: "m_teamId", Type: 1, Tag: 5},
		{Name: "m_handicap", Type: 0, Tag: 6},
		{Name: "m_observe", Type: 19, Tag: 7},
		{Name: "m_result", Type: 19, Tag: 8},
	}}},
	// 21
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 5}, Elem: 20},
	// 22
	{Kind: versioned.KindOptional, Elem: 21},
	// 23
	{Kind: versioned.KindBlob, Bounds: versioned.IntBounds{Min: 0, BitLen: 10}},
	// 24
	{Kind: versioned.KindBlob, Bounds: versioned.IntBounds{Min: 0, BitLen: 11}},
	// 25
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_file", Type: 24, Tag: 0},
	}}},
	// 26
	{Kind: versioned.KindBool},
	// 27
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: -9223372036854775808, BitLen: 64}},
	// 28
	{Kind: versioned.KindBlob, Bounds: versioned.IntBounds{Min: 0, BitLen: 12}},
	// 29
	{Kind: versioned.KindBlob, Bounds: versioned.IntBounds{Min: 40, BitLen: 0}},
	// 30
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 4}, Elem: 29},
	// 31
	{Kind: versioned.KindOptional, Elem: 30},
	// 32
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_playerList", Type: 22, Tag: 0},
		{Name: "m_title", Type: 23, Tag: 1},
		{Name: "m_difficulty", Type: 9, Tag: 2},
		{Name: "m_thumbnail", Type: 25, Tag: 3},
		{Name: "m_isBlizzardMap", Type: 26, Tag: 4},
		{Name: "m_timeUTC", Type: 27, Tag: 5},
		{Name: "m_timeLocalOffset", Type: 27, Tag: 6},
		{Name: "m_description", Type: 28, Tag: 7},
		{Name: "m_imageFilePath", Type: 24, Tag: 8},
		{Name: "m_mapFileName", Type: 24, Tag: 9},
		{Name: "m_cacheHandles", Type: 31, Tag: 10},
		{Name: "m_miniSave", Type: 26, Tag: 11},
		{Name: "m_gameSpeed", Type: 12, Tag: 12},
		{Name: "m_defaultDifficulty", Type: 2, Tag: 13},
	}}},
	// 33
	{Kind: versioned.KindOptional, Elem: 10},
	// 34
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_race", Type: 33, Tag: -1},
	}}},
	// 35
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_name", Type: 9, Tag: -6},
		{Name: "m_randomSeed", Type: 5, Tag: -5},
		{Name: "m_racePreference", Type: 34, Tag: -4},
		{Name: "m_testMap", Type: 26, Tag: -3},
		{Name: "m_testAuto", Type: 26, Tag: -2},
		{Name: "m_observe", Type: 19, Tag: -1},
	}}},
	// 36
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 5}, Elem: 35},
	// 37
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_lockTeams", Type: 26, Tag: -11},
		{Name: "m_teamsTogether", Type: 26, Tag: -10},
		{Name: "m_advancedSharedControl", Type: 26, Tag: -9},
		{Name: "m_randomRaces", Type: 26, Tag: -8},
		{Name: "m_battleNet", Type: 26, Tag: -7},
		{Name: "m_amm", Type: 26, Tag: -6},
		{Name: "m_ranked", Type: 26, Tag: -5},
		{Name: "m_noVictoryOrDefeat", Type: 26, Tag: -4},
		{Name: "m_fog", Type: 19, Tag: -3},
		{Name: "m_observers", Type: 19, Tag: -2},
		{Name: "m_userDifficulty", Type: 19, Tag: -1},
	}}},
	// 38
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 1, BitLen: 4}},
	// 39
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 1, BitLen: 5}},
	// 40
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 1, BitLen: 8}},
	// 41
	{Kind: versioned.KindBitArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 6}},
	// 42
	{Kind: versioned.KindBitArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 8}},
	// 43
	{Kind: versioned.KindBitArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 2}},
	// 44
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_allowedColors", Type: 41, Tag: -5},
		{Name: "m_allowedRaces", Type: 42, Tag: -4},
		{Name: "m_allowedDifficulty", Type: 41, Tag: -3},
		{Name: "m_allowedControls", Type: 42, Tag: -2},
		{Name: "m_allowedObserveTypes", Type: 43, Tag: -1},
	}}},
	// 45
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 5}, Elem: 44},
	// 46
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_randomValue", Type: 5, Tag: -23},
		{Name: "m_gameCacheName", Type: 23, Tag: -22},
		{Name: "m_gameOptions", Type: 37, Tag: -21},
		{Name: "m_gameSpeed", Type: 12, Tag: -20},
		{Name: "m_gameType", Type: 12, Tag: -19},
		{Name: "m_maxUsers", Type: 7, Tag: -18},
		{Name: "m_maxObservers", Type: 7, Tag: -17},
		{Name: "m_maxPlayers", Type: 7, Tag: -16},
		{Name: "m_maxTeams", Type: 38, Tag: -15},
		{Name: "m_maxColors", Type: 39, Tag: -14},
		{Name: "m_maxRaces", Type: 40, Tag: -13},
		{Name: "m_maxControls", Type: 40, Tag: -12},
		{Name: "m_mapSizeX", Type: 10, Tag: -11},
		{Name: "m_mapSizeY", Type: 10, Tag: -10},
		{Name: "m_mapFileSyncChecksum", Type: 5, Tag: -9},
		{Name: "m_mapFileName", Type: 24, Tag: -8},
		{Name: "m_mapAuthorName", Type: 9, Tag: -7},
		{Name: "m_modFileSyncChecksum", Type: 5, Tag: -6},
		{Name: "m_slotDescriptions", Type: 45, Tag: -5},
		{Name: "m_defaultDifficulty", Type: 2, Tag: -4},
		{Name: "m_cacheHandles", Type: 30, Tag: -3},
		{Name: "m_isBlizzardMap", Type: 26, Tag: -2},
		{Name: "m_isPremadeFFA", Type: 26, Tag: -1},
	}}},
	// 47
	{Kind: versioned.KindOptional, Elem: 1},
	// 48
	{Kind: versioned.KindOptional, Elem: 7},
	// 49
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_color", Type: 48, Tag: -1},
	}}},
	// 50
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 5}, Elem: 5},
	// 51
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_control", Type: 10, Tag: -9},
		{Name: "m_userId", Type: 47, Tag: -8},
		{Name: "m_teamId", Type: 1, Tag: -7},
		{Name: "m_colorPref", Type: 49, Tag: -6},
		{Name: "m_racePref", Type: 34, Tag: -5},
		{Name: "m_difficulty", Type: 2, Tag: -4},
		{Name: "m_handicap", Type: 0, Tag: -3},
		{Name: "m_observe", Type: 19, Tag: -2},
		{Name: "m_rewards", Type: 50, Tag: -1},
	}}},
	// 52
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 5}, Elem: 51},
	// 53
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_phase", Type: 12, Tag: -9},
		{Name: "m_maxUsers", Type: 7, Tag: -8},
		{Name: "m_maxObservers", Type: 7, Tag: -7},
		{Name: "m_slots", Type: 52, Tag: -6},
		{Name: "m_randomSeed", Type: 5, Tag: -5},
		{Name: "m_hostUserId", Type: 47, Tag: -4},
		{Name: "m_isSinglePlayer", Type: 26, Tag: -3},
		{Name: "m_gameDuration", Type: 5, Tag: -2},
		{Name: "m_defaultDifficulty", Type: 2, Tag: -1},
	}}},
	// 54
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_userInitialData", Type: 36, Tag: -3},
		{Name: "m_gameDescription", Type: 46, Tag: -2},
		{Name: "m_lobbyState", Type: 53, Tag: -1},
	}}},
	// 55
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_syncLobbyState", Type: 54, Tag: -1},
	}}},
	// 56
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_name", Type: 15, Tag: -1},
	}}},
	// 57
	{Kind: versioned.KindBlob, Bounds: versioned.IntBounds{Min: 0, BitLen: 6}},
	// 58
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_name", Type: 57, Tag: -1},
	}}},
	// 59
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_name", Type: 57, Tag: -3},
		{Name: "m_type", Type: 5, Tag: -2},
		{Name: "m_data", Type: 15, Tag: -1},
	}}},
	// 60
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_type", Type: 5, Tag: -3},
		{Name: "m_name", Type: 57, Tag: -2},
		{Name: "m_data", Type: 28, Tag: -1},
	}}},
	// 61
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_developmentCheatsEnabled", Type: 26, Tag: -4},
		{Name: "m_multiplayerCheatsEnabled", Type: 26, Tag: -3},
		{Name: "m_syncChecksummingEnabled", Type: 26, Tag: -2},
		{Name: "m_isMapToMapTransition", Type: 26, Tag: -1},
	}}},
	// 62
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: nil}},
	// 63
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_fileName", Type: 24, Tag: -5},
		{Name: "m_automatic", Type: 26, Tag: -4},
		{Name: "m_overwrite", Type: 26, Tag: -3},
		{Name: "m_name", Type: 9, Tag: -2},
		{Name: "m_description", Type: 23, Tag: -1},
	}}},
	// 64
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: -2147483648, BitLen: 32}},
	// 65
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "x", Type: 64, Tag: -2},
		{Name: "y", Type: 64, Tag: -1},
	}}},
	// 66
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_point", Type: 65, Tag: -4},
		{Name: "m_time", Type: 64, Tag: -3},
		{Name: "m_verb", Type: 23, Tag: -2},
		{Name: "m_arguments", Type: 23, Tag: -1},
	}}},
	// 67
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_data", Type: 66, Tag: -1},
	}}},
	// 68
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 16}},
	// 69
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "x", Type: 64, Tag: -3},
		{Name: "y", Type: 64, Tag: -2},
		{Name: "z", Type: 64, Tag: -1},
	}}},
	// 70
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_cmdFlags", Type: 5, Tag: -11},
		{Name: "m_abilLink", Type: 68, Tag: -10},
		{Name: "m_abilCmdIndex", Type: 10, Tag: -9},
		{Name: "m_abilCmdData", Type: 10, Tag: -8},
		{Name: "m_targetUnitFlags", Type: 10, Tag: -7},
		{Name: "m_targetUnitTimer", Type: 10, Tag: -6},
		{Name: "m_otherUnit", Type: 5, Tag: -5},
		{Name: "m_targetUnitTag", Type: 5, Tag: -4},
		{Name: "m_targetUnitSnapshotUnitLink", Type: 68, Tag: -3},
		{Name: "m_targetUnitSnapshotPlayerId", Type: 47, Tag: -2},
		{Name: "m_targetPoint", Type: 69, Tag: -1},
	}}},
	// 71
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "__parent", Type: 42, Tag: -1},
	}}},
	// 72
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_unitLink", Type: 68, Tag: -3},
		{Name: "m_intraSubgroupPriority", Type: 10, Tag: -2},
		{Name: "m_count", Type: 10, Tag: -1},
	}}},
	// 73
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 8}, Elem: 72},
	// 74
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 8}, Elem: 5},
	// 75
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_subgroupIndex", Type: 10, Tag: -4},
		{Name: "m_removeMask", Type: 71, Tag: -3},
		{Name: "m_addSubgroups", Type: 73, Tag: -2},
		{Name: "m_addUnitTags", Type: 74, Tag: -1},
	}}},
	// 76
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_controlGroupId", Type: 1, Tag: -2},
		{Name: "m_delta", Type: 75, Tag: -1},
	}}},
	// 77
	{Kind: versioned.KindOptional, Elem: 71},
	// 78
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_controlGroupIndex", Type: 1, Tag: -3},
		{Name: "m_controlGroupUpdate", Type: 19, Tag: -2},
		{Name: "m_mask", Type: 77, Tag: -1},
	}}},
	// 79
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_count", Type: 10, Tag: -6},
		{Name: "m_subgroupCount", Type: 10, Tag: -5},
		{Name: "m_activeSubgroupIndex", Type: 10, Tag: -4},
		{Name: "m_unitTagsChecksum", Type: 5, Tag: -3},
		{Name: "m_subgroupIndicesChecksum", Type: 5, Tag: -2},
		{Name: "m_subgroupsChecksum", Type: 5, Tag: -1},
	}}},
	// 80
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_controlGroupId", Type: 1, Tag: -2},
		{Name: "m_selectionSyncData", Type: 79, Tag: -1},
	}}},
	// 81
	{Kind: versioned.KindArray, Bounds: versioned.IntBounds{Min: 0, BitLen: 3}, Elem: 64},
	// 82
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_recipientId", Type: 1, Tag: -2},
		{Name: "m_resources", Type: 81, Tag: -1},
	}}},
	// 83
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_chatMessage", Type: 23, Tag: -1},
	}}},
	// 84
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: -128, BitLen: 8}},
	// 85
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_beacon", Type: 84, Tag: -7},
		{Name: "m_ally", Type: 84, Tag: -6},
		{Name: "m_autocast", Type: 84, Tag: -5},
		{Name: "m_targetUnitTag", Type: 5, Tag: -4},
		{Name: "m_targetUnitSnapshotUnitLink", Type: 68, Tag: -3},
		{Name: "m_targetUnitSnapshotPlayerId", Type: 47, Tag: -2},
		{Name: "m_targetPoint", Type: 69, Tag: -1},
	}}},
	// 86
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_speed", Type: 12, Tag: -1},
	}}},
	// 87
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_delta", Type: 84, Tag: -1},
	}}},
	// 88
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_verb", Type: 23, Tag: -2},
		{Name: "m_arguments", Type: 23, Tag: -1},
	}}},
	// 89
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_alliance", Type: 5, Tag: -2},
		{Name: "m_control", Type: 5, Tag: -1},
	}}},
	// 90
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_unitTag", Type: 5, Tag: -1},
	}}},
	// 91
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_unitTag", Type: 5, Tag: -2},
		{Name: "m_flags", Type: 10, Tag: -1},
	}}},
	// 92
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_conversationId", Type: 64, Tag: -2},
		{Name: "m_replyId", Type: 64, Tag: -1},
	}}},
	// 93
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_purchaseItemId", Type: 64, Tag: -1},
	}}},
	// 94
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_difficultyLevel", Type: 64, Tag: -1},
	}}},
	// 95
	{Kind: versioned.KindNull},
	// 96
	{Kind: versioned.KindChoice, Bounds: versioned.IntBounds{Min: 0, BitLen: 3}, Choices: map[uint32]versioned.ChoiceOption{
		0: {Name: "None", Type: 95},
		1: {Name: "Checked", Type: 26},
		2: {Name: "ValueChanged", Type: 5},
		3: {Name: "SelectionChanged", Type: 64},
		4: {Name: "TextChanged", Type: 24},
	}},
	// 97
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_controlId", Type: 64, Tag: -3},
		{Name: "m_eventType", Type: 64, Tag: -2},
		{Name: "m_eventData", Type: 96, Tag: -1},
	}}},
	// 98
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_soundHash", Type: 5, Tag: -2},
		{Name: "m_length", Type: 5, Tag: -1},
	}}},
	// 99
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_soundHash", Type: 74, Tag: -2},
		{Name: "m_length", Type: 74, Tag: -1},
	}}},
	// 100
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_syncInfo", Type: 99, Tag: -1},
	}}},
	// 101
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_sound", Type: 5, Tag: -1},
	}}},
	// 102
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_transmissionId", Type: 64, Tag: -1},
	}}},
	// 103
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "x", Type: 68, Tag: -2},
		{Name: "y", Type: 68, Tag: -1},
	}}},
	// 104
	{Kind: versioned.KindOptional, Elem: 68},
	// 105
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_target", Type: 103, Tag: -4},
		{Name: "m_distance", Type: 104, Tag: -3},
		{Name: "m_pitch", Type: 104, Tag: -2},
		{Name: "m_yaw", Type: 104, Tag: -1},
	}}},
	// 106
	{Kind: versioned.KindInt, Bounds: versioned.IntBounds{Min: 0, BitLen: 1}},
	// 107
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_skipType", Type: 106, Tag: -1},
	}}},
	// 108
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_button", Type: 5, Tag: -7},
		{Name: "m_down", Type: 26, Tag: -6},
		{Name: "m_posXUI", Type: 5, Tag: -5},
		{Name: "m_posYUI", Type: 5, Tag: -4},
		{Name: "m_posXWorld", Type: 64, Tag: -3},
		{Name: "m_posYWorld", Type: 64, Tag: -2},
		{Name: "m_posZWorld", Type: 64, Tag: -1},
	}}},
	// 109
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_soundtrack", Type: 5, Tag: -1},
	}}},
	// 110
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_planetId", Type: 64, Tag: -1},
	}}},
	// 111
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_key", Type: 84, Tag: -2},
		{Name: "m_flags", Type: 84, Tag: -1},
	}}},
	// 112
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_resources", Type: 81, Tag: -1},
	}}},
	// 113
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_fulfillRequestId", Type: 64, Tag: -1},
	}}},
	// 114
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_cancelRequestId", Type: 64, Tag: -1},
	}}},
	// 115
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_researchItemId", Type: 64, Tag: -1},
	}}},
	// 116
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_laggingPlayerId", Type: 1, Tag: -1},
	}}},
	// 117
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_mercenaryId", Type: 64, Tag: -1},
	}}},
	// 118
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_battleReportId", Type: 64, Tag: -2},
		{Name: "m_difficultyLevel", Type: 64, Tag: -1},
	}}},
	// 119
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_battleReportId", Type: 64, Tag: -1},
	}}},
	// 120
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_decrementMs", Type: 5, Tag: -1},
	}}},
	// 121
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_portraitId", Type: 64, Tag: -1},
	}}},
	// 122
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_functionName", Type: 15, Tag: -1},
	}}},
	// 123
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_result", Type: 64, Tag: -1},
	}}},
	// 124
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_gameMenuItemIndex", Type: 64, Tag: -1},
	}}},
	// 125
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_reason", Type: 84, Tag: -1},
	}}},
	// 126
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_purchaseCategoryId", Type: 64, Tag: -1},
	}}},
	// 127
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_button", Type: 68, Tag: -1},
	}}},
	// 128
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_recipient", Type: 19, Tag: -2},
		{Name: "m_string", Type: 24, Tag: -1},
	}}},
	// 129
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_recipient", Type: 19, Tag: -2},
		{Name: "m_point", Type: 65, Tag: -1},
	}}},
	// 130
	{Kind: versioned.KindStruct, Struct: versioned.Struct{Fields: []versioned.StructField{
		{Name: "m_progress", Type: 64, Tag: -1},
	}}},
}
