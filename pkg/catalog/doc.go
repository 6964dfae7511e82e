// Package catalog loads named collection fields from JSON or YAML files so
// radio button and check box groups can be declared once and rendered by any
// registered renderer.
//
// A catalog file holds a top level collections map:
//
//	defaults:
//	  object: user
//	collections:
//	  roles:
//	    method: role
//	    kind: radio_buttons
//	    options:
//	      - {value: admin, text: Administrator}
//	      - {value: editor, text: Editor}
//
// Entries without an object inherit defaults.object.
package catalog
