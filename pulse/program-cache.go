package pulse

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Program is the handle of a linked shader program.
type Program uint32

type ProgramConfig interface {
	comparable

	// Specialize compiles and links the program for this config.
	Specialize() (Program, error)
}

// ProgramCache keeps linked programs by their config. Programs that are
// evicted or purged are handed to the release function.
type ProgramCache[C ProgramConfig] struct {
	cache *lru.Cache[C, Program]
}

func NewProgramCache[C ProgramConfig](size int, release func(Program)) *ProgramCache[C] {
	onEvict := func(_ C, program Program) {
		release(program)
	}

	cache, _ := lru.NewWithEvict[C, Program](max(1, size), onEvict)

	return &ProgramCache[C]{cache: cache}
}

func (p *ProgramCache[C]) Get(conf C) (Program, error) {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached, nil
	}

	program, err := conf.Specialize()
	if err != nil {
		return 0, fmt.Errorf("build program: %w", err)
	}

	p.cache.Add(conf, program)

	return program, nil
}

func (p *ProgramCache[C]) Len() int {
	return p.cache.Len()
}

// Purge releases all cached programs.
func (p *ProgramCache[C]) Purge() {
	p.cache.Purge()
}
