/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tree

// Record is one top-level production of a transit file.
type Record interface {
	// Accept dispatches to the visitor method for the concrete variant.
	Accept(v Visitor) error
	// Parts returns the captured items directly beneath the record.
	Parts() []Item
	// Span returns the byte offsets of the record in the source.
	Span() (start, end int)
	// Tag returns the grammar production of the record.
	Tag() string
}

// Body is the capture shared by every record variant.
type Body struct {
	Item Item
}

func (b Body) Parts() []Item          { return b.Item.Children }
func (b Body) Span() (start, end int) { return b.Item.Start, b.Item.End }
func (b Body) Tag() string            { return b.Item.Tag }

// CommentRun is a run of comments outside any record.
type CommentRun struct{ Body }

// Line is a LINE record.
type Line struct{ Body }

// Link is a LINK record.
type Link struct{ Body }

// PNR is a PNR record.
type PNR struct{ Body }

// ZAC is a ZONEACCESS record.
type ZAC struct{ Body }

// AccessLI is one row of an access, egress or transfer link file.
type AccessLI struct{ Body }

// Supplink is a SUPPLINK record.
type Supplink struct{ Body }

// Factor is a FACTOR record.
type Factor struct{ Body }

// Faresystem is a FARESYSTEM record.
type Faresystem struct{ Body }

// WaitCrvDef is a WAITCRVDEF record.
type WaitCrvDef struct{ Body }

// CrowdCrvDef is a CROWDCRVDEF record.
type CrowdCrvDef struct{ Body }

// Operator is an OPERATOR record.
type Operator struct{ Body }

// Mode is a MODE record.
type Mode struct{ Body }

// VehicleType is a VEHICLETYPE record.
type VehicleType struct{ Body }

func (r *CommentRun) Accept(v Visitor) error  { return v.VisitCommentRun(r) }
func (r *Line) Accept(v Visitor) error        { return v.VisitLine(r) }
func (r *Link) Accept(v Visitor) error        { return v.VisitLink(r) }
func (r *PNR) Accept(v Visitor) error         { return v.VisitPNR(r) }
func (r *ZAC) Accept(v Visitor) error         { return v.VisitZAC(r) }
func (r *AccessLI) Accept(v Visitor) error    { return v.VisitAccessLI(r) }
func (r *Supplink) Accept(v Visitor) error    { return v.VisitSupplink(r) }
func (r *Factor) Accept(v Visitor) error      { return v.VisitFactor(r) }
func (r *Faresystem) Accept(v Visitor) error  { return v.VisitFaresystem(r) }
func (r *WaitCrvDef) Accept(v Visitor) error  { return v.VisitWaitCrvDef(r) }
func (r *CrowdCrvDef) Accept(v Visitor) error { return v.VisitCrowdCrvDef(r) }
func (r *Operator) Accept(v Visitor) error    { return v.VisitOperator(r) }
func (r *Mode) Accept(v Visitor) error        { return v.VisitMode(r) }
func (r *VehicleType) Accept(v Visitor) error { return v.VisitVehicleType(r) }
