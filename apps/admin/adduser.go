package main

import (
	"context"
	"fmt"

	"github.com/dikshant1602/wandwrite/core/user"
)

// addUser provisions an account and its profile document.
func (cli *commandLine) addUser(name, email, pwd string) error {
	nu := user.NewUser{Name: name, Email: email, Password: pwd}

	usr, _, err := cli.usrSvc.SignUp(context.Background(), nu)
	if err != nil {
		return err
	}
	fmt.Printf("user %s created (id: %s)\n", usr.Name, usr.ID)
	return nil
}
