/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree

// Visitor has one method per record variant.
type Visitor interface {
	VisitCommentRun(*CommentRun) error
	VisitLine(*Line) error
	VisitLink(*Link) error
	VisitPNR(*PNR) error
	VisitZAC(*ZAC) error
	VisitAccessLI(*AccessLI) error
	VisitSupplink(*Supplink) error
	VisitFactor(*Factor) error
	VisitFaresystem(*Faresystem) error
	VisitWaitCrvDef(*WaitCrvDef) error
	VisitCrowdCrvDef(*CrowdCrvDef) error
	VisitOperator(*Operator) error
	VisitMode(*Mode) error
	VisitVehicleType(*VehicleType) error
}

// Walk visits every record of f in source order, stopping at the first error.
func Walk(f *File, v Visitor) error {
	for _, r := range f.Records {
		if err := r.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// Buckets groups captured items by record kind. Line, link, PNR, zone
// access and access row items are flattened into one stream per kind, in
// which comment runs mark record boundaries. The remaining kinds keep one
// item list per record.
type Buckets struct {
	// Header and Trailer hold comment items outside any record, before the
	// first record and after the last.
	Header  []Item
	Trailer []Item
	// Comments holds every comment outside a record, in source order.
	// Comments that open a record stay with that record.
	Comments []Item

	Lines  []Item
	Links  []Item
	PNRs   []Item
	ZACs   []Item
	Linkis []Item

	Supplinks    [][]Item
	Factors      [][]Item
	Faresystems  [][]Item
	WaitCurves   [][]Item
	CrowdCurves  [][]Item
	Operators    [][]Item
	Modes        [][]Item
	VehicleTypes [][]Item

	seenRecord bool
}

// Collect walks f and returns its items bucketed by kind.
func Collect(f *File) *Buckets {
	b := &Buckets{}
	// the collector never fails
	_ = Walk(f, b)
	return b
}

func (b *Buckets) VisitCommentRun(r *CommentRun) error {
	comments := r.Item.Comments()
	b.Comments = append(b.Comments, comments...)
	if b.seenRecord {
		b.Trailer = append(b.Trailer, comments...)
	} else {
		b.Header = append(b.Header, comments...)
	}
	return nil
}

func (b *Buckets) VisitLine(r *Line) error {
	b.seenRecord = true
	b.Lines = append(b.Lines, r.Parts()...)
	return nil
}

func (b *Buckets) VisitLink(r *Link) error {
	b.seenRecord = true
	b.Links = append(b.Links, r.Parts()...)
	return nil
}

func (b *Buckets) VisitPNR(r *PNR) error {
	b.seenRecord = true
	b.PNRs = append(b.PNRs, r.Parts()...)
	return nil
}

func (b *Buckets) VisitZAC(r *ZAC) error {
	b.seenRecord = true
	b.ZACs = append(b.ZACs, r.Parts()...)
	return nil
}

func (b *Buckets) VisitAccessLI(r *AccessLI) error {
	b.seenRecord = true
	b.Linkis = append(b.Linkis, r.Parts()...)
	return nil
}

func (b *Buckets) VisitSupplink(r *Supplink) error {
	b.seenRecord = true
	b.Supplinks = append(b.Supplinks, r.Parts())
	return nil
}

func (b *Buckets) VisitFactor(r *Factor) error {
	b.seenRecord = true
	b.Factors = append(b.Factors, r.Parts())
	return nil
}

func (b *Buckets) VisitFaresystem(r *Faresystem) error {
	b.seenRecord = true
	b.Faresystems = append(b.Faresystems, r.Parts())
	return nil
}

func (b *Buckets) VisitWaitCrvDef(r *WaitCrvDef) error {
	b.seenRecord = true
	b.WaitCurves = append(b.WaitCurves, r.Parts())
	return nil
}

func (b *Buckets) VisitCrowdCrvDef(r *CrowdCrvDef) error {
	b.seenRecord = true
	b.CrowdCurves = append(b.CrowdCurves, r.Parts())
	return nil
}

func (b *Buckets) VisitOperator(r *Operator) error {
	b.seenRecord = true
	b.Operators = append(b.Operators, r.Parts())
	return nil
}

func (b *Buckets) VisitMode(r *Mode) error {
	b.seenRecord = true
	b.Modes = append(b.Modes, r.Parts())
	return nil
}

func (b *Buckets) VisitVehicleType(r *VehicleType) error {
	b.seenRecord = true
	b.VehicleTypes = append(b.VehicleTypes, r.Parts())
	return nil
}

// Count returns the number of records of each kind, keyed by grammar tag.
func (f *File) Count() map[string]int {
	counts := make(map[string]int)
	for _, r := range f.Records {
		counts[r.Tag()]++
	}
	return counts
}
