package report

import (
	"fmt"
	"io"

	"github.com/tokei-go/tokei/pkg/compare"
)

// RenderText writes the comparison report in the dashboard's plain layout.
func RenderText(w io.Writer, rep *compare.Report) {
	fmt.Fprintln(w, "=== Known Word Comparison (read-only) ===")

	if len(rep.Files) == 0 {
		fmt.Fprintln(w, "exports: (none found)")
	}
	for _, f := range rep.Files {
		fmt.Fprintf(w, "export: %s (%d rows, %d surfaces, %d unique)\n",
			f.Path, f.RawRows, f.Surfaces, f.UniqueSurfaces)
	}
	if rep.CombinedUnique != nil && len(rep.Files) > 1 {
		fmt.Fprintf(w, "export (combined): %d unique surfaces\n", *rep.CombinedUnique)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "AnkiMorphs")
	if rep.Anki.Lemmas == nil {
		fmt.Fprintln(w, "  lemmas:   (skipped)")
		fmt.Fprintln(w, "  surfaces: (skipped)")
	} else {
		if rep.Anki.Filtered {
			fmt.Fprintf(w, "  filter:   interval >= %d days\n", rep.IntervalDays)
		} else {
			fmt.Fprintln(w, "  filter:   none (interval column missing)")
		}
		fmt.Fprintf(w, "  rows:     %s\n", FormatCount(rep.Anki.Rows))
		fmt.Fprintf(w, "  lemmas:   %s\n", FormatCount(rep.Anki.Lemmas))
		fmt.Fprintf(w, "  surfaces: %s\n", FormatCount(rep.Anki.Surfaces))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tokei words")
	if rep.Words.Lemmas == nil && rep.Words.Surfaces == nil {
		fmt.Fprintln(w, "  lemmas:   (skipped)")
		fmt.Fprintln(w, "  surfaces: (skipped)")
	} else {
		fmt.Fprintf(w, "  lemmas:   %s\n", FormatCount(rep.Words.Lemmas))
		fmt.Fprintf(w, "  surfaces: %s\n", FormatCount(rep.Words.Surfaces))
		if rep.Words.ChangedSurfaces != nil {
			fmt.Fprintf(w, "  surface != lemma: %d\n", *rep.Words.ChangedSurfaces)
			if len(rep.Words.ChangedSamples) > 0 {
				fmt.Fprintln(w, "  examples:")
				for _, pair := range rep.Words.ChangedSamples {
					fmt.Fprintf(w, "    - %s -> %s\n", pair.Surface, pair.Lemma)
				}
			}
		}
		if rep.Words.LemmaCollisions != nil {
			fmt.Fprintf(w, "  lemmas with >1 surface: %d\n", *rep.Words.LemmaCollisions)
		}
	}

	if rep.LemmaDiff != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Difference (tokei - AnkiMorphs): %d\n", *rep.LemmaDiff)
	}

	if len(rep.Notes) > 0 {
		fmt.Fprintln(w)
		for _, note := range rep.Notes {
			fmt.Fprintf(w, "note: %s\n", note)
		}
	}
}
