// Package declfile loads command declarations from YAML and TOML files.
//
// A declaration file lists commands with their parameters and result:
//
//	commands:
//	  - id: notebook.cell.execute
//	    doc: Execute Cell
//	    params:
//	      - name: options
//	        type: unknown
//	        doc: The cell range options
//	    returns: void
//
// The TOML form uses the same keys ([[commands]] and [[commands.params]]).
// Types are semantic names as they appear in signatures; "unknown" marks an
// opaque payload and an empty or missing result means "void".
package declfile
