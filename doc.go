// Package agenda is the composition root of the meeting agenda tracker.
//
// A tracker owns one meeting session: meeting info, an agenda with time allocations,
// daily activities, to-dos, action items and free-text notes. Every edit is persisted
// as a whole under a single key, and a stored session is restored (and repaired) on
// open. Unreadable records never prevent startup; the tracker falls back to defaults.
//
// Storage is pluggable through core.Store:
//
//   - fs: one JSON file per key, written atomically, with change notifications.
//   - sqlite: a single-table database (pure Go driver).
//   - memory: volatile, for tests and throwaway sessions.
//
// Usage:
//
//	tr, err := agenda.Open(ctx, dir,
//		agenda.WithAdapter("fs"),
//		agenda.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	defer tr.Close()
//
//	id, err := tr.Add(ctx, agenda.Agenda)
//	err = tr.Update(ctx, agenda.Agenda, id, "topic", "Roadmap")
package agenda
