// Code generated by ent, DO NOT EDIT.

package frame

import (
	"framescribe/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldJobID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldFilename, v))
}

// BaseKey applies equality check predicate on the "base_key" field. It's identical to BaseKeyEQ.
func BaseKey(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldBaseKey, v))
}

// FrameIndex applies equality check predicate on the "frame_index" field. It's identical to FrameIndexEQ.
func FrameIndex(v int) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldFrameIndex, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldText, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Frame {
	return predicate.Frame(sql.FieldNotIn(FieldJobID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Frame {
	return predicate.Frame(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Frame {
	return predicate.Frame(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Frame {
	return predicate.Frame(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Frame {
	return predicate.Frame(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Frame {
	return predicate.Frame(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Frame {
	return predicate.Frame(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Frame {
	return predicate.Frame(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Frame {
	return predicate.Frame(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Frame {
	return predicate.Frame(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Frame {
	return predicate.Frame(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Frame {
	return predicate.Frame(sql.FieldContainsFold(FieldFilename, v))
}

// BaseKeyEQ applies the EQ predicate on the "base_key" field.
func BaseKeyEQ(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldBaseKey, v))
}

// BaseKeyNEQ applies the NEQ predicate on the "base_key" field.
func BaseKeyNEQ(v string) predicate.Frame {
	return predicate.Frame(sql.FieldNEQ(FieldBaseKey, v))
}

// BaseKeyIn applies the In predicate on the "base_key" field.
func BaseKeyIn(vs ...string) predicate.Frame {
	return predicate.Frame(sql.FieldIn(FieldBaseKey, vs...))
}

// BaseKeyNotIn applies the NotIn predicate on the "base_key" field.
func BaseKeyNotIn(vs ...string) predicate.Frame {
	return predicate.Frame(sql.FieldNotIn(FieldBaseKey, vs...))
}

// BaseKeyGT applies the GT predicate on the "base_key" field.
func BaseKeyGT(v string) predicate.Frame {
	return predicate.Frame(sql.FieldGT(FieldBaseKey, v))
}

// BaseKeyGTE applies the GTE predicate on the "base_key" field.
func BaseKeyGTE(v string) predicate.Frame {
	return predicate.Frame(sql.FieldGTE(FieldBaseKey, v))
}

// BaseKeyLT applies the LT predicate on the "base_key" field.
func BaseKeyLT(v string) predicate.Frame {
	return predicate.Frame(sql.FieldLT(FieldBaseKey, v))
}

// BaseKeyLTE applies the LTE predicate on the "base_key" field.
func BaseKeyLTE(v string) predicate.Frame {
	return predicate.Frame(sql.FieldLTE(FieldBaseKey, v))
}

// BaseKeyContains applies the Contains predicate on the "base_key" field.
func BaseKeyContains(v string) predicate.Frame {
	return predicate.Frame(sql.FieldContains(FieldBaseKey, v))
}

// BaseKeyHasPrefix applies the HasPrefix predicate on the "base_key" field.
func BaseKeyHasPrefix(v string) predicate.Frame {
	return predicate.Frame(sql.FieldHasPrefix(FieldBaseKey, v))
}

// BaseKeyHasSuffix applies the HasSuffix predicate on the "base_key" field.
func BaseKeyHasSuffix(v string) predicate.Frame {
	return predicate.Frame(sql.FieldHasSuffix(FieldBaseKey, v))
}

// BaseKeyEqualFold applies the EqualFold predicate on the "base_key" field.
func BaseKeyEqualFold(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEqualFold(FieldBaseKey, v))
}

// BaseKeyContainsFold applies the ContainsFold predicate on the "base_key" field.
func BaseKeyContainsFold(v string) predicate.Frame {
	return predicate.Frame(sql.FieldContainsFold(FieldBaseKey, v))
}

// FrameIndexEQ applies the EQ predicate on the "frame_index" field.
func FrameIndexEQ(v int) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldFrameIndex, v))
}

// FrameIndexNEQ applies the NEQ predicate on the "frame_index" field.
func FrameIndexNEQ(v int) predicate.Frame {
	return predicate.Frame(sql.FieldNEQ(FieldFrameIndex, v))
}

// FrameIndexIn applies the In predicate on the "frame_index" field.
func FrameIndexIn(vs ...int) predicate.Frame {
	return predicate.Frame(sql.FieldIn(FieldFrameIndex, vs...))
}

// FrameIndexNotIn applies the NotIn predicate on the "frame_index" field.
func FrameIndexNotIn(vs ...int) predicate.Frame {
	return predicate.Frame(sql.FieldNotIn(FieldFrameIndex, vs...))
}

// FrameIndexGT applies the GT predicate on the "frame_index" field.
func FrameIndexGT(v int) predicate.Frame {
	return predicate.Frame(sql.FieldGT(FieldFrameIndex, v))
}

// FrameIndexGTE applies the GTE predicate on the "frame_index" field.
func FrameIndexGTE(v int) predicate.Frame {
	return predicate.Frame(sql.FieldGTE(FieldFrameIndex, v))
}

// FrameIndexLT applies the LT predicate on the "frame_index" field.
func FrameIndexLT(v int) predicate.Frame {
	return predicate.Frame(sql.FieldLT(FieldFrameIndex, v))
}

// FrameIndexLTE applies the LTE predicate on the "frame_index" field.
func FrameIndexLTE(v int) predicate.Frame {
	return predicate.Frame(sql.FieldLTE(FieldFrameIndex, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Frame {
	return predicate.Frame(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Frame {
	return predicate.Frame(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Frame {
	return predicate.Frame(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Frame {
	return predicate.Frame(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Frame {
	return predicate.Frame(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Frame {
	return predicate.Frame(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Frame {
	return predicate.Frame(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Frame {
	return predicate.Frame(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Frame {
	return predicate.Frame(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Frame {
	return predicate.Frame(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Frame {
	return predicate.Frame(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Frame {
	return predicate.Frame(sql.FieldContainsFold(FieldText, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Frame {
	return predicate.Frame(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ConversionJob) predicate.Frame {
	return predicate.Frame(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Frame) predicate.Frame {
	return predicate.Frame(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Frame) predicate.Frame {
	return predicate.Frame(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Frame) predicate.Frame {
	return predicate.Frame(sql.NotPredicates(p))
}
