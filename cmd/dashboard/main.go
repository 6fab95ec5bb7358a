package main

import (
	"Balance-Eat/internal/utils"
	"Balance-Eat/internal/utils/storage"
	"Balance-Eat/pkg/dashboard"
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const help = `commands:
  search <term>         foods whose name or category contains term
  categories [term]     categories of the matching foods
  list <category>       foods in a category
  add <name>            stage a food by its exact name
  remove <index>        unstage the food at index
  saved                 staged foods and their totals
  clear                 unstage everything
  export <path|s3://>   write staged foods as csv
  login <email> <pw>    sign in to the backend
  submit <meal_type>    store staged foods as one meal (morning, lunch, dinner)
  quit`

type shell struct {
	ctx     context.Context
	out     io.Writer
	catalog *dashboard.Catalog
	session *dashboard.Session
	client  *dashboard.Client
	s3      storage.AwsS3
}

func main() {
	catalogPath := flag.String("catalog", "foods.csv", "catalog csv path or s3://bucket/key")
	apiURL := flag.String("api", "http://localhost:8080", "backend base url")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	flag.Parse()

	utils.LoadConfig()
	ctx := context.Background()

	sh := &shell{
		ctx:     ctx,
		out:     os.Stdout,
		session: dashboard.NewSession(),
		client:  dashboard.NewClient(*apiURL, 30*time.Second),
	}

	if storage.IsS3URL(*catalogPath) {
		if err := sh.ensureS3(); err != nil {
			log.Fatalf("s3: %v", err)
		}
	}
	catalog, err := dashboard.LoadCatalog(ctx, *catalogPath, sh.s3)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	sh.catalog = catalog
	fmt.Fprintf(sh.out, "Balance Eat - %d foods loaded\n", catalog.Len())

	if *email != "" {
		if err := sh.client.Login(ctx, *email, *password); err != nil {
			log.Errorf("login: %v", err)
		}
	}

	fmt.Fprintln(sh.out, help)
	sh.run(os.Stdin)
}

func (sh *shell) ensureS3() error {
	if sh.s3 != nil {
		return nil
	}
	s3, err := storage.NewAwsS3(sh.ctx)
	if err != nil {
		return err
	}
	sh.s3 = s3
	return nil
}

func (sh *shell) run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := sh.exec(cmd, arg); err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
}

func (sh *shell) exec(cmd, arg string) error {
	switch cmd {
	case "":
		return nil
	case "search":
		foods := sh.catalog.Search(arg)
		if len(foods) == 0 {
			fmt.Fprintln(sh.out, "해당 조건에 맞는 음식이 없습니다.")
		}
		for _, f := range foods {
			printFood(sh.out, f)
		}
	case "categories":
		for _, c := range dashboard.Categories(sh.catalog.Search(arg)) {
			fmt.Fprintln(sh.out, c)
		}
	case "list":
		for _, f := range dashboard.InCategory(sh.catalog.Search(""), arg) {
			printFood(sh.out, f)
		}
	case "add":
		food, ok := sh.catalog.Find(arg)
		if !ok {
			return fmt.Errorf("unknown food %q", arg)
		}
		sh.session.Add(food)
		fmt.Fprintln(sh.out, "저장 완료")
	case "remove":
		idx, err := strconv.Atoi(arg)
		if err != nil {
			return err
		}
		sh.session.Remove(idx)
	case "saved":
		for i, sel := range sh.session.Items() {
			fmt.Fprintf(sh.out, "%d. ", i)
			printFood(sh.out, sel.Food)
		}
		t := sh.session.Totals()
		fmt.Fprintf(sh.out, "total: %.1f kcal | 탄: %.1fg, 단: %.1fg, 지: %.1fg\n", t.Calories, t.Carbs, t.Protein, t.Fat)
	case "clear":
		sh.session.Clear()
	case "export":
		return sh.export(arg)
	case "login":
		email, pw, _ := strings.Cut(arg, " ")
		return sh.client.Login(sh.ctx, email, strings.TrimSpace(pw))
	case "submit":
		if !sh.client.LoggedIn() {
			return fmt.Errorf("login first")
		}
		if err := sh.client.Submit(sh.ctx, sh.session, arg); err != nil {
			return err
		}
		fmt.Fprintln(sh.out, "한끼 저장 완료!")
	case "help":
		fmt.Fprintln(sh.out, help)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (sh *shell) export(location string) error {
	if location == "" {
		location = "saved_meals.csv"
	}

	var buf bytes.Buffer
	if err := sh.session.WriteCSV(&buf); err != nil {
		return err
	}

	if storage.IsS3URL(location) {
		bucket, key, err := storage.ParseS3URL(location)
		if err != nil {
			return err
		}
		if err := sh.ensureS3(); err != nil {
			return err
		}
		return sh.s3.Upload(sh.ctx, bucket, key, buf.Bytes(), "text/csv")
	}
	return os.WriteFile(location, buf.Bytes(), 0o644)
}

func printFood(w io.Writer, f dashboard.CatalogFood) {
	fmt.Fprintf(w, "%s | 열량: %g kcal | 탄: %gg, 단: %gg, 지: %gg\n", f.Name, f.Calories, f.Carbs, f.Protein, f.Fat)
}
