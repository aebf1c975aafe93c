// Package repository holds the thin GORM persistence functions for users,
// games and favorites. Functions take the context and *gorm.DB explicitly so
// they can run inside a transaction; they carry no business rules.
//
// Missing rows surface as ErrNotFound (gorm.ErrRecordNotFound). Other driver
// errors are wrapped with the operation name and returned as-is otherwise.
package repository

import "gorm.io/gorm"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound
