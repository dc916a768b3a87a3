// Package domain contains the core model shared by the promptloop programs.
//
// The domain does not depend on stdin, the terminal or the filesystem. Infra/adapters map into/from these types.
package domain
