package switrs_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nao1215/switrs"
)

// ExampleBuilder loads the three record files of a SWITRS export and queries
// the mapped victim roles.
func ExampleBuilder() {
	tmpDir, err := os.MkdirTemp("", "switrs-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()
	output := filepath.Join(tmpDir, "switrs.sqlite3")

	loader, err := switrs.NewBuilder().
		AddCollisionPath(filepath.Join("testdata", "CollisionRecords.txt")).
		AddPartyPath(filepath.Join("testdata", "PartyRecords.txt")).
		AddVictimPath(filepath.Join("testdata", "VictimRecords.txt")).
		SetOutputFile(output).
		Build(ctx)
	if err != nil {
		log.Fatal(err)
	}

	summary, err := loader.Run(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, t := range summary.Tables {
		fmt.Printf("%s: %d rows\n", t.Table, t.Rows)
	}

	db, err := sql.Open("sqlite", output)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT victim_role, COUNT(*) FROM victims GROUP BY victim_role ORDER BY victim_role")
	if err != nil {
		log.Fatal(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			role  string
			count int
		)
		if err := rows.Scan(&role, &count); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s=%d\n", role, count)
	}
	if err := rows.Err(); err != nil {
		log.Fatal(err)
	}

	// Output:
	// collisions: 3 rows
	// parties: 3 rows
	// victims: 3 rows
	// driver=1
	// other=1
	// passenger=1
}
