// Package packets defines the typed Minecraft Java Edition v763 packet
// bodies this load generator sends and understands, split by state the way
// the teacher's java_protocol/packets package separates c2s_handshake.go,
// c2s_login.go, s2c_login.go, s2c_play.go and c2s_play.go.
//
// Each type exposes an ID constant, an Encode method that appends its wire
// form (packet ID VarInt included) to a buffer.Buffer, and — for packets
// this module receives — a Decode method that reads a payload buffer
// positioned just past the packet ID.
//
// Only the subset of v763 needed to reach and sustain Play state is
// modeled; see spec.md §1 Non-goals. Exact numeric packet IDs for a couple
// of Play packets are not pinned down by any single source and, per
// spec.md §9's own open question, should be checked against a captured
// session before pointing this module at a specific server; the values
// here match the public 1.20.1 (protocol 763) packet tables.
package packets
