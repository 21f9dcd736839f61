// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Connection is the minimal capability a transactional environment exposes.
// It is deliberately not shaped after database/sql — a concrete adapter over
// a real driver is a collaborator that lives outside this package; Transact
// only needs auto-commit toggling and the two ways a transaction can end.
type Connection interface {
	AutoCommit() bool
	SetAutoCommit(bool)
	Commit() error
	Rollback() error
}

// HasConnection is implemented by environments that embed a Connection,
// letting Transact locate it without naming a concrete environment type.
type HasConnection interface {
	Conn() Connection
}

// Transact runs m with auto-commit disabled on the environment's
// connection, committing on success and rolling back on any failure —
// Expected or defect alike. The prior auto-commit flag is always restored,
// whatever m's outcome. Nested Transact calls are independent: an outer
// rollback never undoes an inner, already-committed transaction, since each
// call commits or rolls back only the state of the connection at the point
// it runs.
func Transact[R HasConnection, E, A any](m Effect[R, E, A]) Effect[R, E, A] {
	return AccessM(func(r R) Effect[R, E, A] {
		conn := r.Conn()
		prior := conn.AutoCommit()
		conn.SetAutoCommit(false)
		return FoldCauseM(m,
			func(a A) Effect[R, E, A] {
				return FlatMap(commitEffect[R, E](conn), func(Unit) Effect[R, E, A] {
					return FlatMap(restoreAutoCommit[R, E](conn, prior), func(Unit) Effect[R, E, A] {
						return Succeed[R, E, A](a)
					})
				})
			},
			func(c Cause[E]) Effect[R, E, A] {
				return FlatMap(rollbackEffect[R, E](conn), func(Unit) Effect[R, E, A] {
					return FlatMap(restoreAutoCommit[R, E](conn, prior), func(Unit) Effect[R, E, A] {
						return Halt[R, E, A](c)
					})
				})
			})
	})
}

func commitEffect[R, E any](conn Connection) Effect[R, E, Unit] {
	return EffectTotal[R, E, Unit](func() Unit {
		if err := conn.Commit(); err != nil {
			panic(err)
		}
		return Unit{}
	})
}

func rollbackEffect[R, E any](conn Connection) Effect[R, E, Unit] {
	return EffectTotal[R, E, Unit](func() Unit {
		if err := conn.Rollback(); err != nil {
			panic(err)
		}
		return Unit{}
	})
}

func restoreAutoCommit[R, E any](conn Connection, prior bool) Effect[R, E, Unit] {
	return EffectTotal[R, E, Unit](func() Unit {
		conn.SetAutoCommit(prior)
		return Unit{}
	})
}
