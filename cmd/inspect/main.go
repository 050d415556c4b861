package main

import (
	"basecamp/repositories"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

const detailWidth = 60

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", repositories.PrefixTrip, "Prefix to scan, or \"all\" to count every namespace")
	noColor := flag.Bool("no-color", false, "Disable colored keys")
	flag.Parse()

	if *noColor {
		color.Disable()
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	if *prefix == "all" {
		err = countNamespaces(db, table)
	} else {
		err = dumpPrefix(db, table, *prefix)
	}
	if err != nil {
		log.Fatal(err)
	}
	table.Render()
}

func countNamespaces(db *badger.DB, table *tablewriter.Table) error {
	table.SetHeader([]string{"Namespace", "Keys"})
	return db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		for _, prefix := range repositories.Prefixes {
			count := 0
			it := txn.NewIterator(opts)
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				count++
			}
			it.Close()
			table.Append([]string{color.Cyan.Sprint(prefix), fmt.Sprint(count)})
		}
		return nil
	})
}

// dumpPrefix prints one row per key. Marker keys have empty values and index
// keys hold a bare id, so only documents get a created_at and a detail column.
func dumpPrefix(db *badger.DB, table *tablewriter.Table, prefix string) error {
	table.SetHeader([]string{"Key", "ID", "Created", "Detail"})
	return db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())
			err := item.Value(func(v []byte) error {
				table.Append(describe(rawKey, v))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func describe(key string, value []byte) []string {
	row := []string{color.Cyan.Sprint(key), "", "", ""}
	if len(value) == 0 {
		return row
	}
	var doc map[string]any
	if err := json.Unmarshal(value, &doc); err != nil {
		row[3] = truncate(string(value))
		return row
	}
	row[1] = shortID(fmt.Sprint(doc["id"]))
	if created, ok := doc["created_at"].(string); ok {
		row[2] = created
	}
	for _, field := range []string{"title", "content", "subject", "status", "role"} {
		if v, ok := doc[field]; ok && v != "" {
			row[3] = truncate(fmt.Sprintf("%s=%v", field, v))
			break
		}
	}
	return row
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > detailWidth {
		return s[:detailWidth] + "..."
	}
	return s
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
