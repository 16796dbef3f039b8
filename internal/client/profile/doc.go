// Package profile keeps the editable profile details (bio, website and
// social links) of the signed-in user and persists them under the
// "@profile" key.
package profile
