// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

/*
Package mpq provides a pure Go, read-only decoder for MPQ (Mo'PaQ)
archives, the container format Blizzard wraps every StarCraft II replay in.

# Features

  - Pure Go implementation, no CGO
  - Archive header discovery, including the user-data-header indirection
  - Hash and block directory table decryption via the Blizzard stream cipher
  - Store, zlib, and bzip2 entry decompression, single-unit and sectored
  - Optional "(attributes)" CRC32 cross-check and "(signature)" parsing

# Basic usage

	f, err := os.Open("game.SC2Replay")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	archive, err := mpq.Load(f)
	if err != nil {
		log.Fatal(err)
	}

	var details []byte
	if _, err := archive.ReadFile("replay.details", &details); err != nil {
		log.Fatal(err)
	}

# Limitations

This package covers exactly the read path a replay decoder needs:

  - No archive writing, patch chains, or V3/V4 (Cataclysm+) archives
  - No encrypted-entry support (hash/block table encryption is unrelated
    and always handled)
  - No PKWare implode, Huffman, or ADPCM audio decompression
*/
package mpq
