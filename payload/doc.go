// SPDX-License-Identifier: MIT

// Package payload is the file boundary of tempus: it decodes constraint
// requests from JSON, YAML or HCL, validates them, converts them into
// builder values and renders propagated networks back into rows.
//
// Request shape (JSON spelling; YAML uses the same keys, HCL uses blocks):
//
//	{
//	  "edges": [
//	    {"source": 1, "target": 2, "interval": [10, 20]},
//	    {"source": 2, "target": 3, "minutes": 35, "action": "drive"}
//	  ],
//	  "nodes":   [{"id": 1, "label": "depart"}],
//	  "options": {"implicit_intervals": false,
//	              "execution_uncertainty": 0.1,
//	              "duplicates": "overwrite"}
//	}
//
// HCL spelling:
//
//	edge {
//	  source   = 1
//	  target   = 2
//	  interval = [10, 20]
//	}
//	node {
//	  id    = 1
//	  label = "depart"
//	}
//	options {
//	  duplicates = "intersect"
//	}
//
// Decode and Load only parse. Validate enforces the request rules; every
// failure from this package matches ErrMalformedInput with errors.Is.
//
// The solver packages trust their inputs (an inverted interval is simply
// an infeasible constraint there); this package is where such inputs are
// rejected.
package payload
