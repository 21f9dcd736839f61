// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/effect"
)

// rowStore is the fake committed-data backing store: the only state that
// survives across transactions. fakeConn.pending models the uncommitted
// writes of a single connection.
type rowStore struct {
	committed []string
}

type fakeConn struct {
	autoCommit bool
	pending    []string
	store      *rowStore
}

func (c *fakeConn) AutoCommit() bool     { return c.autoCommit }
func (c *fakeConn) SetAutoCommit(v bool) { c.autoCommit = v }
func (c *fakeConn) Commit() error {
	c.store.committed = append(c.store.committed, c.pending...)
	c.pending = nil
	return nil
}
func (c *fakeConn) Rollback() error {
	c.pending = nil
	return nil
}

type txEnv struct{ conn *fakeConn }

func (e txEnv) Conn() effect.Connection { return e.conn }

func insertPerson(name string) effect.Effect[txEnv, error, effect.Unit] {
	return effect.AccessM(func(e txEnv) effect.Effect[txEnv, error, effect.Unit] {
		return effect.EffectTotal[txEnv, error, effect.Unit](func() effect.Unit {
			e.conn.pending = append(e.conn.pending, name)
			return effect.Unit{}
		})
	})
}

func selectPersons() effect.Effect[txEnv, error, []string] {
	return effect.AccessM(func(e txEnv) effect.Effect[txEnv, error, []string] {
		return effect.EffectTotal[txEnv, error, []string](func() []string {
			out := make([]string, len(e.conn.store.committed))
			copy(out, e.conn.store.committed)
			return out
		})
	})
}

func newTxEnv() txEnv {
	return txEnv{conn: &fakeConn{autoCommit: true, store: &rowStore{}}}
}

func runTx[E, A any](t *testing.T, env txEnv, m effect.Effect[txEnv, E, A]) effect.Exit[E, A] {
	t.Helper()
	return effect.UnsafeRunSync(effect.NewRuntime(env), m)
}

// TestTransactRollbackOnFailure is spec scenario 5.
func TestTransactRollbackOnFailure(t *testing.T) {
	env := newTxEnv()
	m := effect.FlatMap(insertPerson("alice"), func(effect.Unit) effect.Effect[txEnv, error, effect.Unit] {
		return effect.Fail[txEnv, error, effect.Unit](errors.New("data access failure"))
	})

	x := runTx(t, env, effect.Transact(m))
	if x.IsSuccess() {
		t.Fatal("transact should surface the failure")
	}

	rows := runTx(t, env, selectPersons())
	got, ok := rows.Value()
	if !ok || len(got) != 0 {
		t.Fatalf("selectPersons after rollback = %v, want empty", got)
	}
}

func TestTransactCommitsOnSuccess(t *testing.T) {
	env := newTxEnv()
	m := insertPerson("bob")
	x := runTx(t, env, effect.Transact(m))
	if !x.IsSuccess() {
		t.Fatal("transact should succeed")
	}
	rows := runTx(t, env, selectPersons())
	got, _ := rows.Value()
	if len(got) != 1 || got[0] != "bob" {
		t.Fatalf("selectPersons after commit = %v, want [bob]", got)
	}
}

func TestTransactRestoresAutoCommitFlag(t *testing.T) {
	env := newTxEnv()
	env.conn.autoCommit = false
	_ = runTx(t, env, effect.Transact(insertPerson("carol")))
	if env.conn.AutoCommit() != false {
		t.Fatalf("AutoCommit() = %v, want the prior flag (false) restored", env.conn.AutoCommit())
	}

	env2 := newTxEnv()
	env2.conn.autoCommit = true
	_ = runTx(t, env2, effect.Transact(effect.Fail[txEnv, error, effect.Unit](errors.New("x"))))
	if env2.conn.AutoCommit() != true {
		t.Fatalf("AutoCommit() after rollback = %v, want the prior flag (true) restored", env2.conn.AutoCommit())
	}
}

// TestNestedTransactIndependence is spec scenario 6: an outer rollback must
// not undo an inner, already-committed transaction.
func TestNestedTransactIndependence(t *testing.T) {
	env := newTxEnv()

	innerInsert := effect.Transact(insertPerson("inner-row"))
	outerInsertThenThrow := effect.Transact(effect.FlatMap(insertPerson("outer-row"), func(effect.Unit) effect.Effect[txEnv, error, effect.Unit] {
		return effect.Fail[txEnv, error, effect.Unit](errors.New("outer failure"))
	}))

	whole := effect.Comprehension(func(s effect.Scope[txEnv, error]) effect.Effect[txEnv, error, effect.Unit] {
		effect.Extract(s, innerInsert)
		effect.Extract(s, outerInsertThenThrow)
		return effect.Succeed[txEnv, error, effect.Unit](effect.Unit{})
	})

	x := runTx(t, env, effect.Transact(whole))
	if x.IsSuccess() {
		t.Fatal("the whole transaction should fail")
	}

	rows := runTx(t, env, selectPersons())
	got, _ := rows.Value()
	if len(got) != 1 || got[0] != "inner-row" {
		t.Fatalf("selectPersons = %v, want exactly [inner-row]", got)
	}
}
