package argon

// literalSeparator marks the start of verbatim operands.
const literalSeparator = "--"

// chunk groups one flag-or-bare head token with the run of value tokens that
// follow it, up to the next flag token, the -- separator, or end of input.
// First and last chunks carry special spill-into-operands semantics, so the
// positions are tagged here. Chunks are ephemeral: the tokenizer creates
// them, the parser consumes and discards them.
type chunk struct {
	head    string
	tail    []string
	first   bool
	last    bool
	literal bool // head is the -- separator; tail is verbatim
}

// tokenize partitions argv into ordered chunks. A token beginning with a dash
// terminates the current chunk (unless the chunk is still empty, in which
// case the dash token becomes its head) and starts a new one. The literal --
// token closes the current chunk and opens a terminal chunk holding every
// remaining token verbatim; at most one such chunk exists and it is always
// last.
func tokenize(argv []string) []chunk {
	var chunks []chunk
	var cur *chunk

	flush := func() {
		if cur != nil {
			chunks = append(chunks, *cur)
			cur = nil
		}
	}

	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		if tok == literalSeparator {
			flush()
			chunks = append(chunks, chunk{
				head:    literalSeparator,
				tail:    append([]string(nil), argv[i+1:]...),
				literal: true,
			})
			break
		}
		if len(tok) > 0 && tok[0] == '-' {
			flush()
			cur = &chunk{head: tok}
			continue
		}
		if cur == nil {
			cur = &chunk{head: tok}
			continue
		}
		cur.tail = append(cur.tail, tok)
	}
	flush()

	if len(chunks) > 0 {
		chunks[0].first = true
		chunks[len(chunks)-1].last = true
	}
	return chunks
}
