package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/lunarhare/mindease/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.ConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return err
	}

	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.ConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %8s  %s\n", b.Timestamp.Format("2006-01-02 15:04"), humanize.Bytes(uint64(b.Size)), b.Path)
	}

	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.ConfigPath())
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}

	fmt.Printf("Restored storage from %s\n", c.Path)
	fmt.Println("(A safety backup of the previous state was created first.)")
	return nil
}
