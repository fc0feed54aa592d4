// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Imaliure/adaptive-language-learning/ent/revealevent"
)

// RevealEventCreate is the builder for creating a RevealEvent entity.
type RevealEventCreate struct {
	config
	mutation *RevealEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RevealEventCreate) SetSequence(v int64) *RevealEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RevealEventCreate) SetTimestamp(v time.Time) *RevealEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RevealEventCreate) SetNillableTimestamp(v *time.Time) *RevealEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RevealEventCreate) SetRunID(v string) *RevealEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *RevealEventCreate) SetQuestionID(v int) *RevealEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetHintIndex sets the "hint_index" field.
func (_c *RevealEventCreate) SetHintIndex(v int) *RevealEventCreate {
	_c.mutation.SetHintIndex(v)
	return _c
}

// SetWord sets the "word" field.
func (_c *RevealEventCreate) SetWord(v string) *RevealEventCreate {
	_c.mutation.SetWord(v)
	return _c
}

// Mutation returns the RevealEventMutation object of the builder.
func (_c *RevealEventCreate) Mutation() *RevealEventMutation {
	return _c.mutation
}

// Save creates the RevealEvent in the database.
func (_c *RevealEventCreate) Save(ctx context.Context) (*RevealEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RevealEventCreate) SaveX(ctx context.Context) *RevealEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RevealEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RevealEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RevealEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := revealevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RevealEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RevealEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RevealEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RevealEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := revealevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "RevealEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "RevealEvent.question_id"`)}
	}
	if _, ok := _c.mutation.HintIndex(); !ok {
		return &ValidationError{Name: "hint_index", err: errors.New(`ent: missing required field "RevealEvent.hint_index"`)}
	}
	if _, ok := _c.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "RevealEvent.word"`)}
	}
	if v, ok := _c.mutation.Word(); ok {
		if err := revealevent.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "RevealEvent.word": %w`, err)}
		}
	}
	return nil
}

func (_c *RevealEventCreate) sqlSave(ctx context.Context) (*RevealEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RevealEventCreate) createSpec() (*RevealEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RevealEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(revealevent.Table, sqlgraph.NewFieldSpec(revealevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(revealevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(revealevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(revealevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(revealevent.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.HintIndex(); ok {
		_spec.SetField(revealevent.FieldHintIndex, field.TypeInt, value)
		_node.HintIndex = value
	}
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(revealevent.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	return _node, _spec
}

// RevealEventCreateBulk is the builder for creating many RevealEvent entities in bulk.
type RevealEventCreateBulk struct {
	config
	err      error
	builders []*RevealEventCreate
}

// Save creates the RevealEvent entities in the database.
func (_c *RevealEventCreateBulk) Save(ctx context.Context) ([]*RevealEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RevealEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RevealEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RevealEventCreateBulk) SaveX(ctx context.Context) []*RevealEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RevealEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RevealEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
