package kbucket_test

import (
	"fmt"

	kbucket "github.com/max-lt/k-bucket"
)

func ExampleTable() {
	table, err := kbucket.New(kbucket.ID{0x00, 0x00}, kbucket.Options[kbucket.Contact]{
		BucketSize: 3,
	})
	if err != nil {
		panic(err)
	}

	for _, id := range []kbucket.ID{{0x00, 0x01}, {0x00, 0x02}, {0x80, 0x01}, {0x80, 0x02}} {
		outcome, _ := table.Put(kbucket.Contact{Id: id})
		fmt.Println(id, outcome)
	}

	for _, c := range table.Closest(kbucket.ID{0x80, 0x00}, 2) {
		fmt.Println("closest", c.Id)
	}

	fmt.Println("count", table.Count())

	// Output:
	// 0001 added
	// 0002 added
	// 8001 added
	// 8002 added
	// closest 8001
	// closest 8002
	// count 4
}

func ExampleIndexedTable() {
	table, err := kbucket.NewIndexed(kbucket.ID{0x00}, kbucket.Options[kbucket.Contact]{
		BucketSize: 1,
		Overflow:   kbucket.OverflowReject,
	})
	if err != nil {
		panic(err)
	}

	_, err = table.Put(kbucket.Contact{Id: kbucket.ID{0x80}})
	fmt.Println(err)

	_, err = table.Put(kbucket.Contact{Id: kbucket.ID{0x81}})
	fmt.Println(err)

	// Output:
	// <nil>
	// key 81: kbucket: bucket full
}
