package tx

import (
	"context"
	"sync"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, flush := WithAfterCommit(ctx)
	if err := m.execWithIsoLevel(ctx, pgx.Serializable, fn); err != nil {
		return err
	}
	flush()
	return nil
}

type hooksKey struct{}

type hookList struct {
	mu    sync.Mutex
	hooks []func()
}

func (l *hookList) add(fn func()) {
	l.mu.Lock()
	l.hooks = append(l.hooks, fn)
	l.mu.Unlock()
}

func (l *hookList) run() {
	l.mu.Lock()
	hooks := l.hooks
	l.hooks = nil
	l.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// WithAfterCommit вешает на контекст список отложенных хуков и возвращает
// flush для их запуска после коммита. Вложенный Do присоединяется к внешней
// транзакции (Propagation Required), поэтому внутри уже открытой транзакции
// возвращается тот же контекст и no-op flush: хуки копятся у самой внешней.
func WithAfterCommit(ctx context.Context) (context.Context, func()) {
	if _, ok := ctx.Value(hooksKey{}).(*hookList); ok {
		return ctx, func() {}
	}
	list := &hookList{}
	return context.WithValue(ctx, hooksKey{}, list), list.run
}

// AfterCommit откладывает fn до коммита самой внешней транзакции. Откат
// отбрасывает всё отложенное. Вне транзакции fn выполняется сразу.
func AfterCommit(ctx context.Context, fn func()) {
	list, ok := ctx.Value(hooksKey{}).(*hookList)
	if !ok {
		fn()
		return
	}
	list.add(fn)
}
