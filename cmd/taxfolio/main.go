// Command taxfolio runs the bank statement import pipeline from the command
// line: import a CSV, undo an import batch, or list import audits. State
// lives in the in-memory store; persistent backends plug in behind the Store
// interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/taxfolio/backend/internal/logger"
	"github.com/taxfolio/backend/internal/service"
	"github.com/taxfolio/backend/internal/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		usage()
		return fmt.Errorf("missing command")
	}

	log := logger.New()
	st := store.NewMemoryStore()
	imports := service.NewImportService(st, log)
	ctx := logger.WithContext(context.Background(), log)

	switch args[0] {
	case "import":
		fs := flag.NewFlagSet("import", flag.ExitOnError)
		business := fs.String("business", "", "business ID to import for")
		file := fs.String("file", "", "path to the bank statement CSV")
		charset := fs.String("charset", "", "statement charset (IANA name, default UTF-8)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *business == "" || *file == "" {
			fs.Usage()
			return fmt.Errorf("-business and -file are required")
		}
		result, err := imports.ImportCSV(ctx, *business, *file, *charset)
		if err != nil {
			return err
		}
		fmt.Printf("bank: %s\nparsed: %d\nimported: %d (income %d, expenses %d)\nduplicates: %d\nskipped: %d\nflagged: %d\naudit: %s\n",
			result.BankName, result.TotalParsed, result.Imported, result.IncomeCount,
			result.ExpenseCount, result.Duplicates, result.Skipped, result.Flagged, result.AuditID)
		return nil

	case "undo":
		fs := flag.NewFlagSet("undo", flag.ExitOnError)
		audit := fs.String("audit", "", "import audit ID to undo")
		by := fs.String("by", "cli", "who is undoing the import")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *audit == "" {
			fs.Usage()
			return fmt.Errorf("-audit is required")
		}
		if err := imports.UndoImport(ctx, *audit, *by, time.Now()); err != nil {
			return err
		}
		fmt.Println("import undone:", *audit)
		return nil

	case "audits":
		fs := flag.NewFlagSet("audits", flag.ExitOnError)
		business := fs.String("business", "", "business ID to list audits for")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *business == "" {
			fs.Usage()
			return fmt.Errorf("-business is required")
		}
		audits, _, err := st.ListImportAudits(ctx, *business, 100, "")
		if err != nil {
			return err
		}
		for _, a := range audits {
			fmt.Printf("%s  %s  %s  total=%d imported=%d skipped=%d  %s\n",
				a.ID, a.ImportTimestamp.Format(time.RFC3339), a.FileName,
				a.TotalRecords, a.ImportedCount, a.SkippedCount, a.Status)
		}
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  taxfolio import -business <id> -file <statement.csv> [-charset windows-1252]
  taxfolio undo -audit <id> [-by <name>]
  taxfolio audits -business <id>`)
}
