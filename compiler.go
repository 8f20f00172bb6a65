// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package lexnfa

import (
	"io"
	"log"
	"math"
	"sync"
)

// The debug logger for this module. By default, output is discarded.
var dlog *log.Logger

func init() {
	dlog = log.New(io.Discard, "[DEBUG] ", log.Ldate|log.Lmicroseconds|log.Lshortfile)
}

// Change the debug logger object in this module
func SetDebugLogger(logger *log.Logger) {
	dlog = logger
}

// Returns the output of the current debug logger in this module.
// You can then call SetOutput on the object, for example.
func GetDebugLoggerOutput() *log.Logger {
	return dlog
}

// The NFA compiler. It holds the state-id allocator, so every state
// built through one Compiler gets a distinct, monotonically increasing
// id, even when multiple patterns are compiled concurrently.
type Compiler struct {
	mu     sync.Mutex
	nextID int
}

// Instantiates and initializes a new Compiler.
func NewCompiler() *Compiler {
	s := &Compiler{}
	s.Initialize()
	return s
}

// Initializes a Compiler. Use this if you have allocated
// a Compiler object already, and only need to Initialize it.
func (s *Compiler) Initialize() {
	s.nextID = 0
}

// Mint a fresh state id. Safe to call from concurrent builds.
func (s *Compiler) nextStateID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nextID == math.MaxInt {
		return 0, ErrAllocatorExhausted
	}
	id := s.nextID
	s.nextID++
	return id, nil
}

// Compile a token pattern into an NFA.
// The pattern supports literal runes, alternation with '|', and
// grouping with parens. A SyntaxError or UnsupportedConstructError
// is returned for anything else; no NFA is returned on error.
func (s *Compiler) Compile(pattern string) (*NFA, error) {
	b := newBuilder(s, pattern)
	return b.build()
}

// One entry in the result of CompileTokens.
type CompiledToken struct {
	Kind string
	NFA  *NFA
}

// Compile every pattern in a token table, one goroutine per pattern.
// Results come back in table order. If any pattern fails, the first
// failure (in table order) is returned and the results are discarded.
func (s *Compiler) CompileTokens(table *TokenTable) ([]CompiledToken, error) {
	compiled := make([]CompiledToken, len(table.Tokens))
	errs := make([]error, len(table.Tokens))

	var wg sync.WaitGroup
	for i, def := range table.Tokens {
		wg.Add(1)
		go func(i int, def TokenDef) {
			defer wg.Done()
			nfa, err := s.Compile(def.Value)
			if err != nil {
				errs[i] = &TokenError{Kind: def.Kind, Err: err}
				return
			}
			compiled[i] = CompiledToken{Kind: def.Kind, NFA: nfa}
		}(i, def)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return compiled, nil
}
