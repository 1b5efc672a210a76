// Package timeouts defines shared timeout constants used across dicetray.
// Centralizing these values prevents drift between the server, the client
// and the dice runtime.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the tray service.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single non-roll gRPC request.
const GRPCRequest = 2 * time.Second

// Roll caps how long a roll request waits for every die to settle.
const Roll = 10 * time.Second

// SettleDebounce is the delay between the last settle signal and the
// aggregation pass.
const SettleDebounce = 100 * time.Millisecond

// DieAnimation is the base settle delay of a simulated die.
const DieAnimation = 600 * time.Millisecond

// DieAnimationJitter is the maximum extra settle delay of a simulated die.
const DieAnimationJitter = 400 * time.Millisecond

// Shutdown limits how long a server waits for in-flight work and telemetry
// flushes during graceful shutdown.
const Shutdown = 5 * time.Second
