// SPDX-License-Identifier: MPL-2.0

package coreutil

import "gocoreutils/internal/config"

// BuildDefaultRegistry creates a Registry holding every built-in command.
// The network tools receive their defaults from cfg. Commands that rely on
// Unix-only facilities are registered as such so the dispatcher can refuse
// them on Windows.
func BuildDefaultRegistry(cfg *config.Config) (*Registry, error) {
	r := NewRegistry()
	entries := []struct {
		cmd      Command
		onlyUnix bool
	}{
		{cmd: newArchCommand()},
		{cmd: newBase64Command()},
		{cmd: newBasenameCommand()},
		{cmd: newBunzip2Command()},
		{cmd: newBzip2Command()},
		{cmd: newCatCommand()},
		{cmd: newCdCommand()},
		{cmd: newChownCommand(), onlyUnix: true},
		{cmd: newChrootCommand(), onlyUnix: true},
		{cmd: newDirnameCommand()},
		{cmd: newEnvCommand()},
		{cmd: newFalseCommand()},
		{cmd: newGunzipCommand()},
		{cmd: newGzipCommand()},
		{cmd: newHTTPDCommand(cfg.HTTPD)},
		{cmd: newIDCommand(), onlyUnix: true},
		{cmd: newKillCommand()},
		{cmd: newLnCommand(), onlyUnix: true},
		{cmd: newLoggerCommand(), onlyUnix: true},
		{cmd: newLsCommand()},
		{cmd: newMd5sumCommand()},
		{cmd: newMkdirCommand()},
		{cmd: newMktempCommand()},
		{cmd: newMvCommand()},
		{cmd: newPwdCommand()},
		{cmd: newRmCommand()},
		{cmd: newRmdirCommand()},
		{cmd: newSendmailCommand(cfg.Sendmail)},
		{cmd: newSeqCommand()},
		{cmd: newShCommand(r)},
		{cmd: newSha1sumCommand()},
		{cmd: newSha224sumCommand()},
		{cmd: newSha256sumCommand()},
		{cmd: newSha384sumCommand()},
		{cmd: newSha512sumCommand()},
		{cmd: newShredCommand()},
		{cmd: newShufCommand()},
		{cmd: newSleepCommand()},
		{cmd: newSMTPDCommand(cfg.SMTPD)},
		{cmd: newSortCommand()},
		{cmd: newTailCommand()},
		{cmd: newTeeCommand(), onlyUnix: true},
		{cmd: newTouchCommand()},
		{cmd: newUnameCommand()},
		{cmd: newWgetCommand(cfg.Wget)},
		{cmd: newWhoamiCommand(), onlyUnix: true},
		{cmd: newYesCommand()},
		{cmd: newZipCommand()},
	}
	for _, e := range entries {
		var err error
		if e.onlyUnix {
			err = r.RegisterUnixOnly(e.cmd)
		} else {
			err = r.Register(e.cmd)
		}
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}
