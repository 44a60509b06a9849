package mathparse_test

import (
	"fmt"

	"github.com/zephyrtronium/mathparse"
)

func ExampleParse() {
	v, err := mathparse.Parse("2 + 3 * (4 - 2) ^ 2 / 2")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 8
}

func ExampleParser_Parse() {
	p, err := mathparse.New(mathparse.Language("ENG"), mathparse.Stopwords("what", "is"))
	if err != nil {
		panic(err)
	}
	for _, s := range []string{"what is five thousand thirty", "one thousand two hundred four divided by 100", "42 divided by zero"} {
		v, err := p.Parse(s)
		if err != nil {
			panic(err)
		}
		fmt.Println(v, v.Kind())
	}
	// Output:
	// 5030 int
	// 12.04 decimal
	// undefined undefined
}

func ExampleReplaceWordTokens() {
	s, err := mathparse.ReplaceWordTokens("fifty thousand plus fifty-four", "ENG")
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: ((50 * 1000)) + (50 + 4)
}

func ExampleToPostfix() {
	p, err := mathparse.ToPostfix(mathparse.Disambiguate([]string{"-", "2", "+", "3", "*", "4"}))
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: 2 neg 3 4 * +
}
