package main

import (
	"context"
	"fmt"
)

// approve lifts the sign-up gate; with elevate it also grants the
// class-representative (reviewer) role.
func (cli *commandLine) approve(id string, elevate bool) error {
	ctx := context.Background()

	usr, err := cli.usrSvc.Approve(ctx, id)
	if err != nil {
		return err
	}
	if elevate {
		if usr, err = cli.usrSvc.ElevateToClassRepresentative(ctx, id); err != nil {
			return err
		}
	}
	fmt.Printf("user %s approved (role: %s)\n", usr.ID, usr.Role())
	return nil
}
