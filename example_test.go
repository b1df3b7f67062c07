package backre_test

import (
	"fmt"

	"github.com/coregx/backre"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := backre.Compile(`\d+`)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.Match([]byte("hello 123")))
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	re := backre.MustCompile(`hello`)
	fmt.Println(re.MatchString("hello world"))
	// Output: true
}

// ExampleRegex_Find demonstrates finding the first match.
func ExampleRegex_Find() {
	re := backre.MustCompile(`\d+`)
	match := re.Find([]byte("age: 42 years"))
	fmt.Println(string(match))
	// Output: 42
}

// ExampleRegex_FindAll demonstrates finding all matches.
func ExampleRegex_FindAll() {
	re := backre.MustCompile(`\d`)
	matches := re.FindAll([]byte("a1b2c3"), -1)
	for _, m := range matches {
		fmt.Print(string(m), " ")
	}
	fmt.Println()
	// Output: 1 2 3
}

// ExampleRegex_FindSubmatch demonstrates capture groups.
func ExampleRegex_FindSubmatch() {
	re := backre.MustCompile(`(\w+)@(\w+)\.(\w+)`)
	groups := re.FindStringSubmatch("user@example.com")
	fmt.Println(groups[1], groups[2], groups[3])
	// Output: user example com
}

// ExampleRegex_FindMatch demonstrates named group access.
func ExampleRegex_FindMatch() {
	re := backre.MustCompile(`(?<name>\w+)=(\d+)`)
	m := re.FindMatch([]byte("count=42"))
	fmt.Println(m.NamedGroupString("name"), m.GroupString(2))
	// Output: count 42
}

// ExampleRegex_ReplaceAllString demonstrates template-based replacement.
func ExampleRegex_ReplaceAllString() {
	re := backre.MustCompile(`(\w+)@(\w+)\.(\w+)`)
	fmt.Println(re.ReplaceAllString("user@example.com", "$1 at $2 dot $3"))
	// Output: user at example dot com
}

// ExampleRegex_Scan demonstrates iterating over matches with a Scanner.
func ExampleRegex_Scan() {
	re := backre.MustCompile(`\w+`)
	sc := re.Scan([]byte("hello world"))
	for {
		m, ok := sc.Next()
		if !ok {
			break
		}
		fmt.Print(m.String(), " ")
	}
	fmt.Println()
	// Output: hello world
}

// ExampleCompileWithConfig demonstrates custom engine configuration.
func ExampleCompileWithConfig() {
	config := backre.DefaultConfig()
	config.MaxBacktrackSteps = 50000

	re, err := backre.CompileWithConfig(`(a|b|c)*`, config)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.MatchString("abcabc"))
	// Output: true
}
