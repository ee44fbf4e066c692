// Package trace records spans and point events while files are lexed and
// parsed, so slow inputs and hangs can be located after the fact.
//
// A Tracer is attached to a context with WithTracer and picked up by the
// driver and the parser:
//
//	ctx = trace.WithTracer(ctx, t)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "parse", trace.CurrentSpan(ctx).SpanID)
//	defer sp.End("")
//
// Scopes order events from coarse to fine: Driver (one CLI command),
// Phase (tokenize, parse, render), File (one source file) and Node
// (individual grammar productions and recoveries). The configured Level
// decides which scopes reach the output.
//
// Storage is either a stream (text, NDJSON or Chrome trace JSON written as
// events arrive), a ring buffer kept in memory for crash dumps, or both.
package trace
