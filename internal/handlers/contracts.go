package handlers

import (
	"errors"

	"github.com/contractdocs/docservice/internal/database"
	"github.com/contractdocs/docservice/internal/services"
	"github.com/contractdocs/docservice/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContractHandler handles the SM contract route group.
type ContractHandler struct {
	DB *gorm.DB
}

// CreateContract handles POST /api/v1/SM/create_contract
// @Summary Create a contract
// @Tags SM
// @Produce json
// @Param name query string true "Contract name"
// @Param desc query string true "Contract description"
// @Success 200 {object} models.Contract
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /api/v1/SM/create_contract [post]
func (h *ContractHandler) CreateContract(c *fiber.Ctx) error {
	name := param(c, "name")
	desc := param(c, "desc")
	if name == "" || desc == "" {
		return utils.ErrorResponse(c, "name and desc are required", fiber.StatusBadRequest, "contracts.create")
	}

	db := database.Session(c.UserContext(), h.DB)
	contract, err := services.CreateContract(db, name, desc)
	if err != nil {
		return utils.ErrorResponse(c, "Create failed", fiber.StatusInternalServerError, "contracts.create")
	}

	return c.Status(fiber.StatusOK).JSON(contract)
}

// GetContract handles GET /api/v1/SM/get_contract/:con_id
// @Summary Get a contract
// @Tags SM
// @Produce json
// @Param con_id path int true "Contract ID"
// @Success 200 {object} models.Contract
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/v1/SM/get_contract/{con_id} [get]
func (h *ContractHandler) GetContract(c *fiber.Ctx) error {
	conID, err := paramID(c, "con_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Contract not found")
	}

	db := database.Session(c.UserContext(), h.DB)
	contract, err := services.GetContract(db, conID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Contract not found")
		}
		return utils.ErrorResponse(c, "Lookup failed", fiber.StatusInternalServerError, "contracts.get")
	}

	return c.Status(fiber.StatusOK).JSON(contract)
}

// GetAllContracts handles GET /api/v1/SM/get_all_contract
// @Summary List all contracts
// @Tags SM
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/SM/get_all_contract [get]
func (h *ContractHandler) GetAllContracts(c *fiber.Ctx) error {
	db := database.Session(c.UserContext(), h.DB)
	contracts, err := services.ListContracts(db)
	if err != nil {
		return utils.ErrorResponse(c, "Listing failed", fiber.StatusInternalServerError, "contracts.list")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"contract_list": contracts})
}

// DeleteContract handles DELETE /api/v1/SM/delete_contract?con_id=
// @Summary Delete a contract
// @Description Remove a contract and any document links referencing it
// @Tags SM
// @Produce json
// @Param con_id query int true "Contract ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/v1/SM/delete_contract [delete]
func (h *ContractHandler) DeleteContract(c *fiber.Ctx) error {
	conID, err := queryID(c, "con_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Contract not found")
	}

	db := database.Session(c.UserContext(), h.DB)
	if err := services.DeleteContract(db, conID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Contract not found")
		}
		return utils.ErrorResponse(c, "Delete failed", fiber.StatusInternalServerError, "contracts.delete")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": "Contract deleted successfully"})
}

// ConnectContractDocument handles POST /api/v1/SM/connect_contract_document?con_id=&doc_id=
// @Summary Link a document to a contract
// @Tags SM
// @Produce json
// @Param con_id query int true "Contract ID"
// @Param doc_id query int true "Document ID"
// @Success 200 {object} models.ContractDocument
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /api/v1/SM/connect_contract_document [post]
func (h *ContractHandler) ConnectContractDocument(c *fiber.Ctx) error {
	conID, err := queryID(c, "con_id")
	if err != nil {
		return utils.ErrorResponse(c, "con_id is required", fiber.StatusBadRequest, "contracts.link")
	}
	docID, err := queryID(c, "doc_id")
	if err != nil {
		return utils.ErrorResponse(c, "doc_id is required", fiber.StatusBadRequest, "contracts.link")
	}

	db := database.Session(c.UserContext(), h.DB)
	link, err := services.LinkContractDocument(db, conID, docID)
	if err != nil {
		if errors.Is(err, services.ErrBadReference) {
			return utils.ErrorResponse(c, "Contract or document does not exist", fiber.StatusBadRequest, "contracts.link")
		}
		return utils.ErrorResponse(c, "Link failed", fiber.StatusInternalServerError, "contracts.link")
	}

	return c.Status(fiber.StatusOK).JSON(link)
}

// ReadContractDocument handles GET /api/v1/SM/read_contract_document?con_doc_id=
// @Summary Read a contract-document link
// @Description Return the link joined with contract and document metadata
// @Tags SM
// @Produce json
// @Param con_doc_id query int true "Link ID"
// @Success 200 {object} services.ContractLink
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/v1/SM/read_contract_document [get]
func (h *ContractHandler) ReadContractDocument(c *fiber.Ctx) error {
	conDocID, err := queryID(c, "con_doc_id")
	if err != nil {
		return utils.NotFoundResponse(c, "Contract link not found")
	}

	db := database.Session(c.UserContext(), h.DB)
	link, err := services.GetContractLink(db, conDocID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Contract link not found")
		}
		return utils.ErrorResponse(c, "Lookup failed", fiber.StatusInternalServerError, "contracts.link")
	}

	return c.Status(fiber.StatusOK).JSON(link)
}
