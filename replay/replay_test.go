// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package replay

import (
	"testing"

	"github.com/blizzreplay/s2replay/value"
)

// These tests exercise replay's field-extraction glue (fieldStr, fieldU64,
// the m_playerList walk) directly against hand-built Value trees, the same
// way versioned and value each test their own layer in isolation. Open's
// archive-and-catalogue plumbing is covered by mpq's and versioned's own
// suites; building a real multi-entry MPQ archive whose replay.details
// bytes decode through the full build-15405 catalogue would require a
// literal binary fixture that is not present anywhere in the retrieval
// pack.

func buildPlayer(t *testing.T, team uint64, name, race string) *value.Value {
	t.Helper()
	b := value.NewBuilder()
	must(t, b.BeginStruct(3))
	must(t, b.FieldName("m_teamId"))
	must(t, b.Int(int64(team)))
	must(t, b.FieldName("m_name"))
	must(t, b.String(name))
	must(t, b.FieldName("m_race"))
	must(t, b.String(race))
	must(t, b.EndStruct())
	v, err := b.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	return v
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFieldStrAndFieldU64(t *testing.T) {
	p := buildPlayer(t, 1, "Maru", "Terr")

	team, err := fieldU64(p, "m_teamId")
	if err != nil {
		t.Fatalf("fieldU64: %v", err)
	}
	if team != 1 {
		t.Errorf("team = %d, want 1", team)
	}

	name, err := fieldStr(p, "m_name")
	if err != nil {
		t.Fatalf("fieldStr(m_name): %v", err)
	}
	if name != "Maru" {
		t.Errorf("name = %q, want Maru", name)
	}

	race, err := fieldStr(p, "m_race")
	if err != nil {
		t.Fatalf("fieldStr(m_race): %v", err)
	}
	if race != "Terr" {
		t.Errorf("race = %q, want Terr", race)
	}
}

func TestFieldStrMissingKey(t *testing.T) {
	p := buildPlayer(t, 1, "Maru", "Terr")
	if _, err := fieldStr(p, "m_clanTag"); err == nil {
		t.Fatal("fieldStr(m_clanTag): want error, got nil")
	}
}

func TestDetailsPlayerListWalk(t *testing.T) {
	b := value.NewBuilder()
	must(t, b.BeginStruct(2))
	must(t, b.FieldName("m_title"))
	must(t, b.String("Lost Temple"))
	must(t, b.FieldName("m_playerList"))
	must(t, b.BeginArray(2))
	must(t, b.BeginStruct(3))
	must(t, b.FieldName("m_teamId"))
	must(t, b.Int(0))
	must(t, b.FieldName("m_name"))
	must(t, b.String("Maru"))
	must(t, b.FieldName("m_race"))
	must(t, b.String("Terr"))
	must(t, b.EndStruct())
	must(t, b.BeginStruct(3))
	must(t, b.FieldName("m_teamId"))
	must(t, b.Int(1))
	must(t, b.FieldName("m_name"))
	must(t, b.String("Serral"))
	must(t, b.FieldName("m_race"))
	must(t, b.String("Zerg"))
	must(t, b.EndStruct())
	must(t, b.EndArray())
	must(t, b.EndStruct())

	details, err := b.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}

	title, err := fieldStr(details, "m_title")
	if err != nil {
		t.Fatalf("fieldStr(m_title): %v", err)
	}
	if title != "Lost Temple" {
		t.Errorf("title = %q, want Lost Temple", title)
	}

	playerList, err := details.GetPath("m_playerList")
	if err != nil {
		t.Fatalf("GetPath(m_playerList): %v", err)
	}
	players, err := playerList.AsArray()
	if err != nil {
		t.Fatalf("AsArray: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("len(players) = %d, want 2", len(players))
	}
	race, err := fieldStr(players[1], "m_race")
	if err != nil {
		t.Fatalf("fieldStr(m_race): %v", err)
	}
	if race != "Zerg" {
		t.Errorf("players[1].m_race = %q, want Zerg", race)
	}
}
