// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Game setup
	mode     = flag.String("mode", "pve", "Game mode: pvp, pve, or eve")
	humanIs  = flag.String("side", "white", "Human side in pve mode: white or black")
	startFEN = flag.String("fen", "", "Starting position in FEN (default: initial position)")

	// Engine tuning
	depth      = flag.Int("depth", 0, "Search depth in plies (0 = config default)")
	moveTimeMs = flag.Int("movetime", 0, "Per-move time limit in ms (0 = config default)")
	randomAI   = flag.Bool("random", false, "AI plays uniformly random legal moves")
	seed       = flag.Int64("seed", 0, "Seed for the random AI (0 = time-based)")

	// Perft validation
	perftDepth   = flag.Int("perft", 0, "Run perft to this depth on the start position and exit")
	perftWorkers = flag.Int("workers", 0, "Worker count for perft (0 = config default)")

	// Housekeeping
	savePath   = flag.String("save", "", "Write the finished game's transcript to this file (.json for JSON)")
	configPath = flag.String("config", "chessmind.env", "Config file path")
	logFile    = flag.String("log", "", "Log file path (overrides config)")
	noColour   = flag.Bool("no-color", false, "Disable coloured board output")
	maxPlies   = flag.Int("maxplies", 400, "Abort eve games after this many plies")
	version    = flag.Bool("version", false, "Print version and exit")
)
