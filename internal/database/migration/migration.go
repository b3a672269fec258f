package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cmsapi/internal/model"
)

type migrationStep struct {
	Name string
	SQL  string
}

// buildSteps derives the schema from the resource descriptors: one JSONB
// document table per collection, a unique index on the identifier expression
// (the upserts rely on it), and a trigram-friendly GIN index for the
// searchable collections.
func buildSteps() []migrationStep {
	steps := []migrationStep{
		{
			Name: "create_extension_pg_trgm",
			SQL:  `CREATE EXTENSION IF NOT EXISTS pg_trgm;`,
		},
	}

	for _, res := range model.Collections {
		table := res.Collection
		steps = append(steps,
			migrationStep{
				Name: "create_table_" + table,
				SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  seq BIGSERIAL PRIMARY KEY,
  doc JSONB    NOT NULL
);`, table),
			},
			migrationStep{
				Name: "create_index_" + table + "_" + res.IDField,
				SQL: fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_%s ON %s ((doc->>'%s'));`,
					table, res.IDField, table, res.IDField),
			},
		)

		if res.Search != nil {
			for _, field := range res.Search.Fields {
				steps = append(steps, migrationStep{
					Name: "create_index_" + table + "_" + field + "_trgm",
					SQL: fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_%s_trgm ON %s USING GIN ((doc->>'%s') gin_trgm_ops);`,
						table, field, table, field),
				})
			}
		}
	}

	return steps
}

// EnsureMigrated checks whether the schema exists already and creates it
// otherwise. The programs table is the sentinel.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.programs') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range buildSteps() {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
