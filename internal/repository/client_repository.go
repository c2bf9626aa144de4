package repository

import (
	"strings"

	"github.com/kiranvs080988/Boutique1/internal/models"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id uint) (*models.Client, error)
	GetByMobile(mobileNumber string) (*models.Client, error)
	GetAll(offset, limit int) ([]models.Client, error)
	GetRecent(limit int) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id uint) error
	Search(term string, limit int) ([]models.Client, error)
	FindByMobileLike(partial string) (*models.Client, error)
	LookupByMobileOrName(mobile, name string) ([]models.Client, error)
	CountByMobile(mobileNumber string, excludeID uint) (int64, error)
	DeleteAll() (int64, error)
	Count() (int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepository) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetByMobile(mobileNumber string) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("mobile_number = ?", mobileNumber).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetAll(offset, limit int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Offset(offset).Limit(limit).Find(&clients).Error
	return clients, err
}

func (r *clientRepository) GetRecent(limit int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Order("id desc").Limit(limit).Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete removes a client and all of its work orders in one transaction.
func (r *clientRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.WorkOrder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, id).Error
	})
}

// Search matches the term as a case-insensitive substring of the client's
// name, mobile number, email or address.
func (r *clientRepository) Search(term string, limit int) ([]models.Client, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var clients []models.Client
	err := r.db.
		Where("lower(name) LIKE ? OR lower(mobile_number) LIKE ? OR lower(email) LIKE ? OR lower(address) LIKE ?",
			pattern, pattern, pattern, pattern).
		Limit(limit).
		Find(&clients).Error
	return clients, err
}

// FindByMobileLike returns the first client whose mobile number contains the
// given digits. Used by the mobile lookup endpoints, which accept partial
// numbers.
func (r *clientRepository) FindByMobileLike(partial string) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("mobile_number LIKE ?", "%"+partial+"%").First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// LookupByMobileOrName matches clients by partial mobile number or partial
// name, case-insensitively. Either argument may be empty.
func (r *clientRepository) LookupByMobileOrName(mobile, name string) ([]models.Client, error) {
	query := r.db
	switch {
	case mobile != "" && name != "":
		query = query.Where("mobile_number LIKE ? OR lower(name) LIKE ?",
			"%"+mobile+"%", "%"+strings.ToLower(name)+"%")
	case mobile != "":
		query = query.Where("mobile_number LIKE ?", "%"+mobile+"%")
	case name != "":
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var clients []models.Client
	err := query.Find(&clients).Error
	return clients, err
}

// CountByMobile counts clients holding the given mobile number, excluding
// excludeID (pass 0 to exclude nothing). Used for duplicate checks.
func (r *clientRepository) CountByMobile(mobileNumber string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Client{}).Where("mobile_number = ?", mobileNumber)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *clientRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.Client{})
	return result.RowsAffected, result.Error
}

func (r *clientRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Count(&count).Error
	return count, err
}
