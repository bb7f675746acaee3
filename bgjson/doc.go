// Package bgjson serializes breakpoint-graph state to and from its JSON
// document form.
//
// # Document shape
//
//	{
//	  "vertices": [{"name": "1h", "v_id": 1}, ...],
//	  "genomes":  [{"name": "red", "g_id": 1}, ...],
//	  "edges":    [{"vertex1_id": 1, "vertex2_id": 2, "multicolor": [1, 1, 2]}, ...]
//	}
//
// A vertex appears once under a numeric id and edges refer to endpoints by
// id. A genome appears once under a numeric id and an edge's multicolor
// lists one genome id per unit of multiplicity.
//
// # Guarantees
//
// Marshal and Write emit a deterministic document: vertices sorted by name,
// genomes sorted by name, edges in edge-ID order, multicolor entries in
// genome-id order. Unmarshal and Read validate referential integrity and
// reject documents with missing top-level fields, dangling vertex or genome
// references, or edges with empty multicolors via sentinel errors; a
// rejected document never yields a partially populated graph.
package bgjson
