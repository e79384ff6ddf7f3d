// Package catalog provides the fixed building and department option lists
// the enrollment wizard presents in its selection page.
//
// Defaults are embedded text lists under data/. Deployments can replace
// either list with a YAML document (see Load) or programmatically via
// options. Lists keep their declaration order because the wizard renders
// them as dropdowns; entries are deduplicated, comments and blank lines are
// ignored.
package catalog
