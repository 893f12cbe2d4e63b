// Package samexport turns an in-memory alignment into a biogo/hts SAM
// record, without touching a file: callers that want a BAM/SAM file pipe
// the record through biogo/hts/bam or biogo/hts/sam themselves.
package samexport

import (
	"fmt"

	"github.com/biogo/hts/sam"

	"galign/traceback"
)

// RefNamer resolves an original vertex id to the reference name a SAM
// record should carry.
type RefNamer func(originalID int) string

// ToRecord converts a.Mappings into one sam.Record per mapping, joined by
// nothing: each mapping is a fully independent alignment segment anchored
// at its own (originalID, offset), mirroring how a split-vertex path can
// cross several original vertices. Returns one record per mapping in
// path order.
func ToRecord(a traceback.Alignment, queryName string, refLen func(originalID int) int, refName RefNamer) ([]sam.Record, error) {
	if a.Failed() {
		return nil, fmt.Errorf("[samexport.ToRecord] alignment %q failed", queryName)
	}

	records := make([]sam.Record, 0, len(a.Mappings))
	for _, m := range a.Mappings {
		ref, err := sam.NewReference(refName(m.OriginalID), "", "", refLen(m.OriginalID), nil, nil)
		if err != nil {
			return nil, fmt.Errorf("[samexport.ToRecord] new reference: %w", err)
		}

		cigar, seq := buildCigarAndSequence(m)

		rec := sam.Record{
			Name:  queryName,
			Ref:   ref,
			Pos:   m.Offset,
			MapQ:  255,
			Cigar: cigar,
			Seq:   sam.NewSeq(seq),
		}
		if m.Reverse {
			rec.Flags |= sam.Reverse
		}
		if as, err := sam.NewAux(sam.Tag{'A', 'S'}, int(a.Score)); err == nil {
			rec.AuxFields = append(rec.AuxFields, as)
		}
		records = append(records, rec)
	}
	return records, nil
}

// buildCigarAndSequence expands one Mapping's edits into CIGAR operations
// and concatenated literal query sequence. An edit with equal
// fromLength/toLength is a match-or-mismatch run; fromLength beyond
// toLength is a trailing deletion, toLength beyond fromLength a trailing
// insertion.
func buildCigarAndSequence(m traceback.Mapping) (sam.Cigar, []byte) {
	var cigar sam.Cigar
	var seq []byte
	for _, e := range m.Edits {
		matched := e.FromLength
		if e.ToLength < matched {
			matched = e.ToLength
		}
		if matched > 0 {
			cigar = append(cigar, sam.NewCigarOp(sam.CigarMatch, matched))
		}
		if e.FromLength > matched {
			cigar = append(cigar, sam.NewCigarOp(sam.CigarDeletion, e.FromLength-matched))
		}
		if e.ToLength > matched {
			cigar = append(cigar, sam.NewCigarOp(sam.CigarInsertion, e.ToLength-matched))
		}
		seq = append(seq, e.Sequence...)
	}
	return cigar, seq
}
