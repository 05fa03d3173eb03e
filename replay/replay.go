// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

// Package replay ties the archive reader and versioned decoder together:
// open a replay file, locate its "replay.details"/"replay.header" entries,
// decode each against the build-15405 catalogue, and surface a typed
// Summary.
package replay

import (
	"io"

	"github.com/pkg/errors"

	"github.com/blizzreplay/s2replay/mpq"
	"github.com/blizzreplay/s2replay/protocol"
	"github.com/blizzreplay/s2replay/value"
	"github.com/blizzreplay/s2replay/versioned"
)

// Player is one entry of replay.details's m_playerList.
type Player struct {
	Team uint64
	Name string
	Race string
}

// Summary is the subset of a replay's decoded metadata the CLI surfaces.
type Summary struct {
	Title         string
	IsBlizzardMap bool
	Players       []Player
	Details       *value.Value
	Header        *value.Value
	Attributes    *mpq.Attributes
	Signature     *mpq.SignatureInfo
}

// Open reads a replay archive from source and produces a Summary. source
// must also implement io.Seeker (mpq.Load's requirement); it is accepted as
// io.ReadSeeker directly rather than widened to io.Reader, since every
// caller in this module already has a seekable file handle.
func Open(source io.ReadSeeker) (*Summary, error) {
	archive, err := mpq.Load(source)
	if err != nil {
		return nil, errors.Wrap(err, "replay: load archive")
	}

	details, err := decodeEntry(archive, "replay.details", protocol.GameDetailsTypeId)
	if err != nil {
		return nil, err
	}

	header, err := decodeEntry(archive, "replay.header", protocol.ReplayHeaderTypeId)
	if err != nil {
		return nil, err
	}

	attrs, err := archive.ReadAttributes()
	if err != nil {
		return nil, errors.Wrap(err, "replay: read attributes")
	}
	if attrs != nil && attrs.CRC32 != nil {
		for _, name := range []string{"replay.details", "replay.header"} {
			ok, err := archive.ValidateEntry(name)
			if err != nil {
				return nil, errors.Wrapf(err, "replay: validate %s", name)
			}
			if !ok {
				return nil, errors.Errorf("replay: %s failed its (attributes) CRC32 check", name)
			}
		}
	}

	sig, err := archive.ReadSignature()
	if err != nil {
		return nil, errors.Wrap(err, "replay: read signature")
	}
	if sig != nil {
		if err := sig.VerifySignature(); err != nil {
			return nil, errors.Wrap(err, "replay: signature")
		}
	}

	title, err := fieldStr(details, "m_title")
	if err != nil {
		return nil, err
	}

	isBlizzardMap, err := fieldBool(details, "m_isBlizzardMap")
	if err != nil {
		return nil, err
	}

	playerList, err := details.GetPath("m_playerList")
	if err != nil {
		return nil, errors.Wrap(err, "replay: m_playerList")
	}
	playerValues, err := playerList.AsArray()
	if err != nil {
		return nil, errors.Wrap(err, "replay: m_playerList")
	}

	players := make([]Player, 0, len(playerValues))
	for i, pv := range playerValues {
		team, err := fieldU64(pv, "m_teamId")
		if err != nil {
			return nil, errors.Wrapf(err, "replay: player %d", i)
		}
		name, err := fieldStr(pv, "m_name")
		if err != nil {
			return nil, errors.Wrapf(err, "replay: player %d", i)
		}
		race, err := fieldStr(pv, "m_race")
		if err != nil {
			return nil, errors.Wrapf(err, "replay: player %d", i)
		}
		players = append(players, Player{Team: team, Name: name, Race: race})
	}

	return &Summary{
		Title:         title,
		IsBlizzardMap: isBlizzardMap,
		Players:       players,
		Details:       details,
		Header:        header,
		Attributes:    attrs,
		Signature:     sig,
	}, nil
}

func decodeEntry(archive *mpq.Archive, name string, root versioned.TypeId) (*value.Value, error) {
	var buf []byte
	if _, err := archive.ReadFile(name, &buf); err != nil {
		return nil, errors.Wrapf(err, "replay: read %s", name)
	}
	v, err := value.Decode(protocol.TypeInfos, root, buf)
	if err != nil {
		return nil, errors.Wrapf(err, "replay: decode %s", name)
	}
	return v, nil
}

func fieldStr(v *value.Value, field string) (string, error) {
	fv, err := v.GetPath(field)
	if err != nil {
		return "", errors.Wrapf(err, "field %s", field)
	}
	s, err := fv.AsStr()
	if err != nil {
		return "", errors.Wrapf(err, "field %s", field)
	}
	return s, nil
}

func fieldU64(v *value.Value, field string) (uint64, error) {
	fv, err := v.GetPath(field)
	if err != nil {
		return 0, errors.Wrapf(err, "field %s", field)
	}
	u, err := fv.AsU64()
	if err != nil {
		return 0, errors.Wrapf(err, "field %s", field)
	}
	return u, nil
}

func fieldBool(v *value.Value, field string) (bool, error) {
	fv, err := v.GetPath(field)
	if err != nil {
		return false, errors.Wrapf(err, "field %s", field)
	}
	b, err := fv.AsBool()
	if err != nil {
		return false, errors.Wrapf(err, "field %s", field)
	}
	return b, nil
}
