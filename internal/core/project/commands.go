package project

import "context"

// Commands run inside generated projects.
const (
	cmdNpmInstall         = "npm install"
	cmdTailwindInstall    = "npm install -D tailwindcss @tailwindcss/vite --legacy-peer-deps"
	cmdShadcnTailwind     = "npm install tailwindcss @tailwindcss/vite --legacy-peer-deps"
	cmdTypesNode          = "npm install -D @types/node"
	cmdShadcnUtils        = "npm install clsx tailwind-merge class-variance-authority @radix-ui/react-slot"
	cmdShadcnInit         = "npx shadcn@latest init"
	cmdPipInstall         = "pip install -r requirements.txt"
	cmdPrismaGenerate     = "npx prisma generate"
	cmdDrizzleGenerate    = "npm run db:generate"
	cmdGitInit            = "git init"
	shadcnConfigFailedMsg = "Could not configure shadcn/ui"
)

type commandText struct {
	step, done, fail string
}

var commandTexts = map[string]commandText{
	cmdNpmInstall:      {"Installing dependencies...", "Installed dependencies", "Could not install dependencies"},
	cmdTailwindInstall: {"Installing Tailwind CSS v4...", "Installed Tailwind CSS v4", "Could not install Tailwind CSS"},
	cmdShadcnTailwind:  {"Installing Tailwind CSS and dependencies...", "Installed Tailwind CSS", "Could not install Tailwind CSS"},
	cmdTypesNode:       {"Installing @types/node...", "Installed @types/node", "Could not install @types/node"},
	cmdShadcnUtils:     {"Installing shadcn/ui utilities...", "Set up utility functions", shadcnConfigFailedMsg},
	cmdPipInstall:      {"Installing Python dependencies...", "Installed Python dependencies", "Could not install Python dependencies"},
	cmdPrismaGenerate:  {"Generating Prisma client...", "Generated Prisma client", "Could not generate Prisma client"},
	cmdDrizzleGenerate: {"Generating Drizzle schema...", "Generated Drizzle schema", "Could not generate Drizzle schema"},
}

func textFor(command string) commandText {
	if t, ok := commandTexts[command]; ok {
		return t
	}
	return commandText{
		step: "Running: " + command,
		done: "Ran: " + command,
		fail: "Command failed: " + command,
	}
}

// runChain runs commands in the project directory until one fails. The
// failure becomes a single warning whose hint names it and every command
// after it. It reports whether the whole chain succeeded.
func (r *run) runChain(ctx context.Context, chain []string) bool {
	for i, command := range chain {
		text := textFor(command)
		r.reporter.Step(text.step)
		if err := r.exec(ctx, r.path, command); err != nil {
			r.warn(err, text.fail, manualHint(chain[i:]...))
			return false
		}
		r.reporter.Done(text.done)
	}
	return true
}

// runOne runs a single best-effort command with a custom follow-up hint.
func (r *run) runOne(ctx context.Context, command, followUp string) bool {
	text := textFor(command)
	r.reporter.Step(text.step)
	if err := r.exec(ctx, r.path, command); err != nil {
		r.warn(err, text.fail, followUp)
		return false
	}
	r.reporter.Done(text.done)
	return true
}
