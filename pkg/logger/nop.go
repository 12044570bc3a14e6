package logger

// NewNop возвращает логгер, который ничего не пишет. Для тестов.
func NewNop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...Field) {}
func (nopLogger) Warn(string, ...Field) {}
func (nopLogger) Error(string, ...Field) {}

func (l nopLogger) With(...Field) Logger { return l }
