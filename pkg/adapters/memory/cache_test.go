package memory_test

import (
	"testing"

	"github.com/aretw0/bayeux/pkg/adapters/memory"
	"github.com/aretw0/bayeux/pkg/ports/tests"
)

func TestMemoryCache_Contract(t *testing.T) {
	tests.PosteriorCacheContractTest(t, memory.NewCache())
}
