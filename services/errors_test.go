package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsDuplicateKey(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '9876543210' for key 'phone'"}
	if !isDuplicateKey(dup) {
		t.Error("error 1062 must be recognized")
	}
	if !isDuplicateKey(fmt.Errorf("failed to create farmer: %w", dup)) {
		t.Error("wrapped 1062 must be recognized")
	}
	if isDuplicateKey(&mysql.MySQLError{Number: 1451, Message: "foreign key constraint fails"}) {
		t.Error("other MySQL errors must not match")
	}
	if isDuplicateKey(errors.New("boom")) {
		t.Error("non-MySQL errors must not match")
	}
	if isDuplicateKey(nil) {
		t.Error("nil must not match")
	}
}
