package shorthand

// builtin returns the shorthand table in help order.
//
// remote keeps its remote configuration meaning; remote branch listing
// lives under rbranch so both stay reachable.
func builtin() []Entry {
	return []Entry{
		// Setup & config
		{Name: "init", Category: Setup, Usage: "[dir]", Expands: "git init [dir]", Summary: "Create a repository", Arity: NoArgs, Format: positional(1, "init")},
		{Name: "clone", Category: Setup, Usage: "<url>", Expands: "git clone <url>", Summary: "Clone a repository", Arity: ArgsRequired, Format: positional(1, "clone")},
		{Name: "name", Category: Setup, Usage: "<name>", Expands: "git config --global user.name <name>", Summary: "Set the global author name", Arity: ArgsRequired, Format: positional(1, "config", "--global", "user.name")},
		{Name: "email", Category: Setup, Usage: "<email>", Expands: "git config --global user.email <email>", Summary: "Set the global author email", Arity: ArgsRequired, Format: positional(1, "config", "--global", "user.email")},
		{Name: "color", Category: Setup, Expands: "git config --global color.ui auto", Summary: "Enable coloured output", Arity: NoArgs, Format: fixed("config", "--global", "color.ui", "auto")},
		{Name: "config", Category: Setup, Expands: "git config --global --edit", Summary: "Edit the global config", Arity: NoArgs, Format: fixed("config", "--global", "--edit")},

		// Basic operations
		{Name: "status", Category: Basic, Expands: "git status", Summary: "Show working tree status", Arity: NoArgs, Format: fixed("status")},
		{Name: "add", Category: Basic, Usage: "[file]", Expands: "git add [file]", Summary: "Stage a file (default: everything)", Format: firstOr(".", "add")},
		{Name: "commit", Category: Basic, Usage: "[msg]", Expands: `git commit [-m "<msg>"]`, Summary: "Commit, opening the editor without a message", Format: flagValue("-m", "commit")},
		{Name: "amend", Category: Basic, Expands: "git commit --amend", Summary: "Amend the last commit", Arity: NoArgs, Format: fixed("commit", "--amend")},

		// Stage & snapshot
		{Name: "reset", Category: Staging, Usage: "[file]", Expands: "git reset [file]", Summary: "Unstage changes", Arity: NoArgs, Format: positional(1, "reset")},
		{Name: "soft", Category: Staging, Usage: "[commit]", Expands: "git reset --soft [commit]", Summary: "Move HEAD, keep index and tree", Arity: NoArgs, Format: positional(1, "reset", "--soft")},
		{Name: "hard", Category: Staging, Usage: "[commit]", Expands: "git reset --hard [commit]", Summary: "Move HEAD, discard changes", Arity: NoArgs, Format: positional(1, "reset", "--hard")},
		{Name: "diff", Category: Staging, Expands: "git diff", Summary: "Show unstaged changes", Arity: NoArgs, Format: fixed("diff")},
		{Name: "diffstaged", Category: Staging, Expands: "git diff --staged", Summary: "Show staged changes", Arity: NoArgs, Format: fixed("diff", "--staged")},
		{Name: "diffcached", Category: Staging, Expands: "git diff --cached", Summary: "Show staged changes", Arity: NoArgs, Format: fixed("diff", "--cached")},
		{Name: "diffhead", Category: Staging, Expands: "git diff HEAD", Summary: "Show all changes since HEAD", Arity: NoArgs, Format: fixed("diff", "HEAD")},
		{Name: "unstage", Category: Staging, Usage: "<file>", Expands: "git reset <file>", Summary: "Unstage a file", Arity: ArgsRequired, Format: positional(1, "reset")},

		// Branching
		{Name: "branch", Category: Branching, Expands: "git branch", Summary: "List local branches", Arity: NoArgs, Format: fixed("branch")},
		{Name: "all", Category: Branching, Expands: "git branch -a", Summary: "List all branches", Arity: NoArgs, Format: fixed("branch", "-a")},
		{Name: "rbranch", Category: Branching, Expands: "git branch -r", Summary: "List remote branches", Arity: NoArgs, Format: fixed("branch", "-r")},
		{Name: "verbose", Category: Branching, Expands: "git branch -v", Summary: "List branches with last commit", Arity: NoArgs, Format: fixed("branch", "-v")},
		{Name: "merged", Category: Branching, Expands: "git branch --merged", Summary: "List merged branches", Arity: NoArgs, Format: fixed("branch", "--merged")},
		{Name: "unmerged", Category: Branching, Expands: "git branch --no-merged", Summary: "List unmerged branches", Arity: NoArgs, Format: fixed("branch", "--no-merged")},
		{Name: "create", Category: Branching, Usage: "<branch>", Expands: "git checkout -b <branch>", Summary: "Create and switch to a branch", Arity: ArgsRequired, Format: positional(1, "checkout", "-b")},
		{Name: "new", Category: Branching, Usage: "<branch>", Expands: "git branch <branch>", Summary: "Create a branch", Arity: ArgsRequired, Format: positional(1, "branch")},
		{Name: "switch", Category: Branching, Usage: "<branch>", Expands: "git checkout <branch>", Summary: "Switch branches", Arity: ArgsRequired, Format: positional(1, "checkout")},
		{Name: "checkout", Category: Branching, Usage: "<branch>", Expands: "git checkout <branch>", Summary: "Switch branches", Arity: ArgsRequired, Format: positional(1, "checkout")},
		{Name: "merge", Category: Branching, Usage: "<branch>", Expands: "git merge <branch>", Summary: "Merge a branch into the current one", Arity: ArgsRequired, Format: positional(1, "merge")},
		{Name: "del", Category: Branching, Usage: "<branch>", Expands: "git branch -d <branch>", Summary: "Delete a merged branch", Arity: ArgsRequired, Format: positional(1, "branch", "-d")},
		{Name: "delf", Category: Branching, Usage: "<branch>", Expands: "git branch -D <branch>", Summary: "Force delete a branch", Arity: ArgsRequired, Format: positional(1, "branch", "-D")},
		{Name: "rename", Category: Branching, Usage: "<new>", Expands: "git branch -m <new>", Summary: "Rename the current branch", Arity: ArgsRequired, Format: positional(1, "branch", "-m")},
		{Name: "current", Category: Branching, Expands: "git branch --show-current", Summary: "Print the current branch", Arity: NoArgs, Format: fixed("branch", "--show-current")},

		// Remote operations
		{Name: "remote", Category: Remote, Usage: "[name] [url]", Expands: "git remote [add <name> <url>]", Summary: "List remotes, or add one", Arity: NoArgs, Format: remoteAdd},
		{Name: "fetch", Category: Remote, Usage: "[remote] [branch]", Expands: "git fetch [remote] [branch]", Summary: "Download objects and refs", Arity: NoArgs, Format: positional(2, "fetch")},
		{Name: "pull", Category: Remote, Usage: "[remote]", Expands: "git pull [remote]", Summary: "Fetch and merge", Arity: NoArgs, Format: positional(1, "pull")},
		{Name: "pullrebase", Category: Remote, Usage: "[remote]", Expands: "git pull --rebase [remote]", Summary: "Fetch and rebase", Arity: NoArgs, Format: positional(1, "pull", "--rebase")},
		{Name: "push", Category: Remote, Usage: "[remote] [branch]", Expands: "git push [remote] [branch]", Summary: "Push commits", Arity: NoArgs, Format: positional(2, "push")},
		{Name: "pushforce", Category: Remote, Usage: "[remote]", Expands: "git push [remote] --force", Summary: "Force push", Format: positionalThen(1, []string{"push"}, "--force")},
		{Name: "pushall", Category: Remote, Usage: "[remote]", Expands: "git push [remote] --all", Summary: "Push all branches", Format: positionalThen(1, []string{"push"}, "--all")},
		{Name: "pushtags", Category: Remote, Usage: "[remote]", Expands: "git push [remote] --tags", Summary: "Push all tags", Format: positionalThen(1, []string{"push"}, "--tags")},
		{Name: "pushu", Category: Remote, Usage: "<remote> <branch>", Expands: "git push -u <remote> <branch>", Summary: "Push and set upstream", Arity: ArgsRequired, MinArgs: 2, Format: positional(2, "push", "-u")},

		// History & inspection
		{Name: "log", Category: History, Expands: "git log", Summary: "Show commit history", Arity: NoArgs, Format: fixed("log")},
		{Name: "oneline", Category: History, Expands: "git log --oneline", Summary: "One line per commit", Arity: NoArgs, Format: fixed("log", "--oneline")},
		{Name: "graph", Category: History, Expands: "git log --graph --decorate", Summary: "History as a graph", Arity: NoArgs, Format: fixed("log", "--graph", "--decorate")},
		{Name: "stat", Category: History, Expands: "git log --stat", Summary: "History with file stats", Arity: NoArgs, Format: fixed("log", "--stat")},
		{Name: "logp", Category: History, Expands: "git log -p", Summary: "History with patches", Arity: NoArgs, Format: fixed("log", "-p")},
		{Name: "follow", Category: History, Usage: "<file>", Expands: "git log --follow <file>", Summary: "History of a file across renames", Arity: ArgsRequired, Format: positional(1, "log", "--follow")},
		{Name: "author", Category: History, Usage: "<author>", Expands: `git log --author="<author>"`, Summary: "Commits by author", Arity: ArgsRequired, Format: joined("--author=", "log")},
		{Name: "loggrep", Category: History, Usage: "<pattern>", Expands: `git log --grep="<pattern>"`, Summary: "Commits whose message matches", Arity: ArgsRequired, Format: joined("--grep=", "log")},
		{Name: "limit", Category: History, Usage: "<count>", Expands: "git log -<count>", Summary: "Last <count> commits", Arity: ArgsRequired, Format: joined("-", "log")},
		{Name: "range", Category: History, Usage: "<since> <until>", Expands: "git log <since>..<until>", Summary: "Commits between two refs", Arity: ArgsRequired, MinArgs: 2, Format: logRange},
		{Name: "reflog", Category: History, Expands: "git reflog", Summary: "Show the reflog", Arity: NoArgs, Format: fixed("reflog")},
		{Name: "show", Category: History, Usage: "<sha>", Expands: "git show <sha>", Summary: "Show a commit", Arity: ArgsRequired, Format: positional(1, "show")},

		// Stashing
		{Name: "stash", Category: Stashing, Expands: "git stash", Summary: "Stash changes", Arity: NoArgs, Format: fixed("stash")},
		{Name: "stashlist", Category: Stashing, Expands: "git stash list", Summary: "List stashes", Arity: NoArgs, Format: fixed("stash", "list")},
		{Name: "stashpop", Category: Stashing, Expands: "git stash pop", Summary: "Apply and drop the top stash", Arity: NoArgs, Format: fixed("stash", "pop")},
		{Name: "stashdrop", Category: Stashing, Expands: "git stash drop", Summary: "Drop the top stash", Arity: NoArgs, Format: fixed("stash", "drop")},

		// Rewriting history
		{Name: "rebase", Category: Rewriting, Usage: "<branch>", Expands: "git rebase <branch>", Summary: "Rebase onto a branch", Arity: ArgsRequired, Format: positional(1, "rebase")},
		{Name: "rebasei", Category: Rewriting, Usage: "<base>", Expands: "git rebase -i <base>", Summary: "Interactive rebase", Arity: ArgsRequired, Format: positional(1, "rebase", "-i")},
		{Name: "revert", Category: Rewriting, Usage: "<commit>", Expands: "git revert <commit>", Summary: "Revert a commit", Arity: ArgsRequired, Format: positional(1, "revert")},

		// File operations
		{Name: "rm", Category: Files, Usage: "<file>", Expands: "git rm <file>", Summary: "Remove a tracked file", Arity: ArgsRequired, Format: positional(1, "rm")},
		{Name: "mv", Category: Files, Usage: "<old> <new>", Expands: "git mv <old> <new>", Summary: "Move or rename a file", Arity: ArgsRequired, MinArgs: 2, Format: positional(2, "mv")},
		{Name: "clean", Category: Files, Expands: "git clean -n", Summary: "Preview untracked file removal", Arity: NoArgs, Format: fixed("clean", "-n")},
		{Name: "cleanf", Category: Files, Expands: "git clean -f", Summary: "Remove untracked files", Arity: NoArgs, Format: fixed("clean", "-f")},
		{Name: "checkoutfile", Category: Files, Usage: "<file>", Expands: "git checkout -- <file>", Summary: "Discard changes to a file", Arity: ArgsRequired, Format: positional(1, "checkout", "--")},

		// Tagging
		{Name: "tag", Category: Tagging, Expands: "git tag", Summary: "List tags", Arity: NoArgs, Format: fixed("tag")},
		{Name: "tagcreate", Category: Tagging, Usage: "<name> [commit]", Expands: "git tag <name> [commit]", Summary: "Create a lightweight tag", Arity: ArgsRequired, Format: positional(2, "tag")},
		{Name: "taga", Category: Tagging, Usage: "<name> [commit]", Expands: "git tag -a <name> [commit]", Summary: "Create an annotated tag", Arity: ArgsRequired, Format: positional(2, "tag", "-a")},
		{Name: "tagdel", Category: Tagging, Usage: "<name>", Expands: "git tag -d <name>", Summary: "Delete a tag", Arity: ArgsRequired, Format: positional(1, "tag", "-d")},

		// Aliases
		{Name: "st", Category: Aliases, Expands: "git status", Summary: "Alias for status", Arity: NoArgs, Format: fixed("status")},
		{Name: "co", Category: Aliases, Usage: "<branch>", Expands: "git checkout <branch>", Summary: "Alias for checkout", Arity: ArgsRequired, Format: positional(1, "checkout")},
		{Name: "br", Category: Aliases, Expands: "git branch", Summary: "Alias for branch", Arity: NoArgs, Format: fixed("branch")},
		{Name: "ci", Category: Aliases, Usage: "[msg]", Expands: `git commit [-m "<msg>"]`, Summary: "Alias for commit", Format: flagValue("-m", "commit")},
	}
}
