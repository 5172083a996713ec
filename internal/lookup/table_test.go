package lookup

import (
	"bytes"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeTable(t *testing.T, reclen int, keys []rune, values []uint32) *Table {
	var b bytes.Buffer
	rec := make([]byte, reclen)
	for i, k := range keys {
		PutRecord(rec, k, values[i])
		b.Write(rec)
	}
	data := b.Bytes()
	table, err := NewTable("test", bytes.NewReader(data), int64(len(data)), reclen)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestFind(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	keys := []rune{0x28, 0x29, 0x3C, 0x3E, 0x5B, 0x5D, 0x2039, 0x203A, 0x1D7C3, 0xFFFFFF}
	values := []uint32{0x29, 0x28, 0x3E, 0x3C, 0x5D, 0x5B, 0x203A, 0x2039, 0x1D7C2, 0xABCDEF}
	table := makeTable(t, 6, keys, values)
	defer table.Close()
	if table.Len() != len(keys) {
		t.Errorf("expected table to hold %d records, holds %d", len(keys), table.Len())
	}
	for i, k := range keys {
		v, ok, err := table.Find(k)
		if err != nil {
			t.Fatal(err)
		}
		if !ok || v != values[i] {
			t.Errorf("expected %#x -> %#x, got %#x (found=%v)", k, values[i], v, ok)
		}
	}
	for _, k := range []rune{0, 0x27, 0x2A, 0x5C, 0x10FFFF, -1, 0x1000000} {
		if _, ok, err := table.Find(k); ok || err != nil {
			t.Errorf("expected %#x to be absent, found=%v, err=%v", k, ok, err)
		}
	}
}

func TestFindWideValues(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	keys := []rune{0x41, 0x5D0, 0x10000}
	values := []uint32{0, 0x12345678, 0xFFFFFFFF}
	table := makeTable(t, 7, keys, values)
	defer table.Close()
	for i, k := range keys {
		if v, ok, _ := table.Find(k); !ok || v != values[i] {
			t.Errorf("expected %#x -> %#x, got %#x", k, values[i], v)
		}
	}
}

func TestEmptyTable(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	table, err := NewTable("empty", bytes.NewReader(nil), 0, 7)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := table.Find('A'); ok || err != nil {
		t.Errorf("expected lookup in empty table to miss silently")
	}
	if _, err := NewTable("bad", bytes.NewReader(nil), 0, 3); err != ErrRecordLength {
		t.Errorf("expected record length error, got %v", err)
	}
}

func TestConcurrentFind(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	keys := make([]rune, 500)
	values := make([]uint32, 500)
	for i := range keys {
		keys[i] = rune(3 * i)
		values[i] = uint32(i)
	}
	table := makeTable(t, 7, keys, values)
	defer table.Close()
	var wg sync.WaitGroup
	errs := make(chan rune, len(keys))
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, k := range keys {
				if v, ok, _ := table.Find(k); !ok || v != values[i] {
					errs <- k
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for k := range errs {
		t.Errorf("concurrent lookup of %#x failed", k)
	}
}

func TestMemoize(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	calls := 0
	find := func(r rune) (int, bool, error) {
		calls++
		if r%2 == 0 {
			return int(r) * 10, true, nil
		}
		return 0, false, nil
	}
	cache := NewCache[int](16)
	for i := 0; i < 3; i++ {
		v, ok, _ := Memoize(cache, "test", 4, find)
		if !ok || v != 40 {
			t.Errorf("expected 4 -> 40, got %d", v)
		}
	}
	if calls != 1 {
		t.Errorf("expected found value to be cached, find called %d times", calls)
	}
	Memoize(cache, "test", 5, find)
	Memoize(cache, "test", 5, find)
	if calls != 3 {
		t.Errorf("expected absent keys not to be cached, find called %d times", calls)
	}
	if NewCache[int](0) != nil {
		t.Errorf("expected cache of size 0 to be nil")
	}
	v, ok, _ := Memoize[int](nil, "test", 8, find)
	if !ok || v != 80 {
		t.Errorf("expected uncached lookup 8 -> 80, got %d", v)
	}
}
