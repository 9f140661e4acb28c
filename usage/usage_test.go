package usage

import (
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quickwritereader/InlineStr/heapstr"
	"github.com/quickwritereader/InlineStr/inlinestr"
	"github.com/quickwritereader/InlineStr/smallstr"
	"github.com/quickwritereader/InlineStr/types"
)

const testJson = `{"users":[` +
	`{"id":1,"name":"Alice","email":"alice@example.com","bio":"Alice has been working on distributed storage systems for well over a decade now"},` +
	`{"id":2,"name":"Bob","email":"bob@example.com","bio":"Bob"},` +
	`{"id":3,"name":"Çiğdem","email":"cigdem@example.com","bio":"Çiğdem maintains the UTF-8 handling layer and reviews every boundary-related change"}` +
	`]}`

type user struct {
	ID    int             `json:"id" msgpack:"id"`
	Name  smallstr.String `json:"name" msgpack:"name"`
	Email smallstr.String `json:"email" msgpack:"email"`
	Bio   smallstr.String `json:"bio" msgpack:"bio"`
}

type payload struct {
	Users []user `json:"users" msgpack:"users"`
}

func TestDecodeChoosesRepresentationBySize(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(testJson), &p))
	require.Len(t, p.Users, 3)

	for _, u := range p.Users {
		if u.Name.Len() <= inlinestr.Capacity {
			assert.Equal(t, types.RepInline, u.Name.Rep(), "name %q", u.Name.String())
		} else {
			assert.Equal(t, types.RepHeap, u.Name.Rep(), "name %q", u.Name.String())
		}
	}

	assert.Equal(t, "Alice", p.Users[0].Name.String())
	assert.Equal(t, types.RepHeap, p.Users[0].Bio.Rep())
	assert.Equal(t, types.RepInline, p.Users[1].Bio.Rep())
	assert.Equal(t, "Çiğdem", p.Users[2].Name.String())
}

// signature builds "Name <email>" through the capability surface, so it
// works identically over either string implementation.
func signature(b smallstr.Buffer, name, email string) error {
	b.Clear()
	b.Reserve(len(name) + len(email) + 3)
	b.PushStr(name)
	b.PushStr(" <")
	b.PushStr(email)
	b.Push('>')
	return nil
}

func TestGenericAlgorithmOverBothImplementations(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(testJson), &p))

	for _, u := range p.Users {
		var small smallstr.String
		var heap heapstr.String

		require.NoError(t, signature(&small, u.Name.String(), u.Email.String()))
		require.NoError(t, signature(&heap, u.Name.String(), u.Email.String()))

		assert.Equal(t, heap.String(), small.String())
		assert.Equal(t, heap.Len(), small.Len())

		want := fmt.Sprintf("%s <%s>", u.Name.String(), u.Email.String())
		assert.Equal(t, want, small.String())
	}
}

func TestEditScriptEquivalence(t *testing.T) {
	edits := func(b smallstr.Buffer) {
		b.PushStr("The quick brown fox")
		_ = b.InsertStr(4, "very ")
		_, _ = b.Remove(0)
		_ = b.ReplaceRange(0, 2, "A")
		b.Retain(func(r rune) bool { return r != 'o' })
		b.PushStr(" jumps over the lazy dog, repeatedly, until the buffer has outgrown the inline stage")
		_ = b.Truncate(40)
		b.ShrinkToFit()
	}

	var small smallstr.String
	var heap heapstr.String
	edits(&small)
	edits(&heap)

	assert.Equal(t, heap.String(), small.String())
	assert.Equal(t, heap.Len(), small.Len())
	assert.Equal(t, types.RepHeap, small.Rep())
}

func TestMsgpackAndJsoniterAgree(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(testJson), &p))

	mp, err := msgpack.Marshal(&p)
	require.NoError(t, err)
	var fromMsgpack payload
	require.NoError(t, msgpack.Unmarshal(mp, &fromMsgpack))

	var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary
	ji, err := jsonIter.Marshal(&p)
	require.NoError(t, err)
	var fromJsoniter payload
	require.NoError(t, jsonIter.Unmarshal(ji, &fromJsoniter))

	for i := range p.Users {
		assert.Equal(t, p.Users[i].Bio.String(), fromMsgpack.Users[i].Bio.String())
		assert.Equal(t, p.Users[i].Bio.String(), fromJsoniter.Users[i].Bio.String())
	}
}

var sinkJSON []byte

func BenchmarkEncode_GoJson(b *testing.B) {
	var p payload
	if err := json.Unmarshal([]byte(testJson), &p); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkJSON, _ = json.Marshal(&p)
	}
	b.StopTimer()
	b.Logf("GoJson size: %d bytes", len(sinkJSON))
}

func BenchmarkEncode_JsonIter(b *testing.B) {
	var p payload
	if err := json.Unmarshal([]byte(testJson), &p); err != nil {
		b.Fatal(err)
	}
	var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkJSON, _ = jsonIter.Marshal(&p)
	}
	b.StopTimer()
	b.Logf("JsonIter size: %d bytes", len(sinkJSON))
}

func BenchmarkEncode_Msgpack(b *testing.B) {
	var p payload
	if err := json.Unmarshal([]byte(testJson), &p); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkJSON, _ = msgpack.Marshal(&p)
	}
	b.StopTimer()
	b.Logf("Msgpack size: %d bytes", len(sinkJSON))
}
