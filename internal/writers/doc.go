// Package writers turns parsed records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text/JSON/JSONL/FASTA).
//   - The fasta package stays format-producing only; app stays
//     orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
