// Package repositories implements the SQLite run journal.
//
// Key Implementations:
//   - [RunRepository] : runs and their association outcomes
//   - [JournalRecorder] : binds a run ID to the repository so the seeder can record outcomes as they happen
//
// The schema lives in internal/shared/sql and is applied by [shared.RunMigrations].
package repositories
