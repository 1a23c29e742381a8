package catalog

import "github.com/arloliu/amqp911/method"

// Select is tx.select (90,10), putting the channel into transactional mode.
type Select struct{}

func (m *Select) ClassID() uint16            { return ClassTx }
func (m *Select) MethodID() uint16           { return 10 }
func (m *Select) Fields() []method.FieldSpec { return nil }

// SelectOk is tx.select-ok (90,11).
type SelectOk struct{}

func (m *SelectOk) ClassID() uint16            { return ClassTx }
func (m *SelectOk) MethodID() uint16           { return 11 }
func (m *SelectOk) Fields() []method.FieldSpec { return nil }

// Commit is tx.commit (90,20).
type Commit struct{}

func (m *Commit) ClassID() uint16            { return ClassTx }
func (m *Commit) MethodID() uint16           { return 20 }
func (m *Commit) Fields() []method.FieldSpec { return nil }

// CommitOk is tx.commit-ok (90,21).
type CommitOk struct{}

func (m *CommitOk) ClassID() uint16            { return ClassTx }
func (m *CommitOk) MethodID() uint16           { return 21 }
func (m *CommitOk) Fields() []method.FieldSpec { return nil }

// Rollback is tx.rollback (90,30).
type Rollback struct{}

func (m *Rollback) ClassID() uint16            { return ClassTx }
func (m *Rollback) MethodID() uint16           { return 30 }
func (m *Rollback) Fields() []method.FieldSpec { return nil }

// RollbackOk is tx.rollback-ok (90,31).
type RollbackOk struct{}

func (m *RollbackOk) ClassID() uint16            { return ClassTx }
func (m *RollbackOk) MethodID() uint16           { return 31 }
func (m *RollbackOk) Fields() []method.FieldSpec { return nil }
